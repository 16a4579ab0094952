// Command seed populates a local store with demo members, rooms and a few
// messages, and prints ready-to-use bearer tokens for manual testing.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"time"

	"mentor-chat/auth"
	"mentor-chat/domain"
	"mentor-chat/repositories"

	"github.com/dgraph-io/badger/v4"
)

func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	secret := flag.String("secret", "dev-only-secret", "Token signing secret")
	adminID := flag.Int64("admin", 5, "Designated admin account id")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	members := repositories.NewMemberRepository(db)
	rooms := repositories.NewRoomRepository(db, slog.Default())
	messages := repositories.NewMessageRepository(db, slog.Default(), 2000)

	now := time.Now().UTC()
	seedMembers := []repositories.Member{
		{ID: 10, Nickname: "mentor-kim", CreatedAt: now},
		{ID: 20, Nickname: "mentee-lee", CreatedAt: now},
		{ID: *adminID, Nickname: "support", CreatedAt: now},
	}
	for _, member := range seedMembers {
		if err := members.Save(member); err != nil {
			log.Fatal("Seeding member failed: ", err)
		}
	}

	mentoring, err := rooms.GetOrCreate(domain.Mentoring{MentorID: 10, MenteeID: 20})
	if err != nil {
		log.Fatal("Seeding mentoring room failed: ", err)
	}
	adminRoom, err := rooms.GetOrCreate(domain.AdminContact{AdminID: *adminID, MemberID: 20})
	if err != nil {
		log.Fatal("Seeding admin room failed: ", err)
	}

	if _, err = messages.Append(mentoring.ID, 20, domain.RoleMentee, "hello"); err != nil {
		log.Fatal("Seeding message failed: ", err)
	}
	if _, err = messages.Append(mentoring.ID, 10, domain.RoleMentor, "hi, ready when you are"); err != nil {
		log.Fatal("Seeding message failed: ", err)
	}

	fmt.Printf("Mentoring room: %d\nAdmin room: %d\n", mentoring.ID, adminRoom.ID)
	for _, viewer := range []domain.Viewer{
		{ID: 10, Role: domain.RoleMentor},
		{ID: 20, Role: domain.RoleMentee},
		{ID: *adminID, Role: domain.RoleAdmin},
	} {
		token, err := auth.GenerateToken([]byte(*secret), viewer, 24*time.Hour)
		if err != nil {
			log.Fatal("Token generation failed: ", err)
		}
		fmt.Printf("%s %d: %s\n", viewer.Role, viewer.ID, token)
	}
}
