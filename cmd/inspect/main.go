// Command inspect dumps the chat store for debugging: rooms with their
// variants, or the message log of one room.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	prefix := flag.String("prefix", "room:", "Prefix to scan (room: or msg:{roomID}:)")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	switch {
	case strings.HasPrefix(*prefix, "room:"):
		table.SetHeader([]string{"Key", "Room", "Kind", "Left", "Right", "Created"})
		err = scan(db, *prefix, func(key string, val []byte) error {
			var room struct {
				ID        uint64 `json:"id"`
				Kind      string `json:"kind"`
				LeftID    int64  `json:"left_id"`
				RightID   int64  `json:"right_id"`
				CreatedAt int64  `json:"created_at"`
			}
			if err := json.Unmarshal(val, &room); err != nil {
				return err
			}
			table.Append([]string{
				key,
				fmt.Sprintf("%d", room.ID),
				room.Kind,
				fmt.Sprintf("%d", room.LeftID),
				fmt.Sprintf("%d", room.RightID),
				time.Unix(0, room.CreatedAt).UTC().Format(time.RFC3339),
			})
			return nil
		})
	case strings.HasPrefix(*prefix, "msg:"):
		table.SetHeader([]string{"Key", "ID", "Sender", "Role", "At", "Content"})
		err = scan(db, *prefix, func(key string, val []byte) error {
			var message struct {
				ID         uint64 `json:"id"`
				SenderID   int64  `json:"sender_id"`
				SenderRole string `json:"sender_role"`
				Content    string `json:"content"`
				SentAt     int64  `json:"sent_at"`
			}
			if err := json.Unmarshal(val, &message); err != nil {
				return err
			}
			content := message.Content
			if len(content) > 48 {
				content = content[:48] + "…"
			}
			table.Append([]string{
				key,
				fmt.Sprintf("%d", message.ID),
				fmt.Sprintf("%d", message.SenderID),
				message.SenderRole,
				time.Unix(0, message.SentAt).UTC().Format("15:04:05"),
				content,
			})
			return nil
		})
	default:
		color.Red.Printf("Unsupported prefix %q (use room: or msg:{roomID}:)\n", *prefix)
		os.Exit(1)
	}
	if err != nil {
		log.Fatal("Scan failed: ", err)
	}

	color.Green.Printf("Scan of %q complete\n", *prefix)
	table.Render()
}

func scan(db *badger.DB, prefix string, row func(key string, val []byte) error) error {
	return db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())
			// Counters and index entries live under their own prefixes,
			// but a bare "room" scan would also catch "roomuniq"/"roomof".
			if strings.HasPrefix(key, "roomuniq:") || strings.HasPrefix(key, "roomof:") {
				continue
			}
			err := item.Value(func(v []byte) error {
				if err := row(key, v); err != nil {
					fmt.Printf("Error decoding key %s: %v\n", key, err)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}
