package main

import "time"

type Config struct {
	BufferSize           int           `env:"BUFFER_SIZE,default=1024"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=256"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,default=2s"`
	NicknameTTL          time.Duration `env:"NICKNAME_TTL,default=10m"`
	MaxContentLength     int           `env:"MAX_CONTENT_LENGTH,default=2000"`
	PageSize             int           `env:"PAGE_SIZE,default=20"`
	AdminID              int64         `env:"ADMIN_ID,default=5"`
	DisplayZone          string        `env:"DISPLAY_ZONE,default=Asia/Seoul"`
	TokenSecret          string        `env:"TOKEN_SECRET,required=true"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,default=info"`
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=8080"`
}
