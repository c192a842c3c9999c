// Command-line tool that loads member seed data into the database.
package main

import (
	"amora/amora/config"
	"amora/amora/sources/psql"
	"amora/amora/sources/psql/dao"
	"amora/amora/sources/psql/models"
	"amora/amora/utils/logging"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
)

type seedPhoto struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	IsMain   bool   `json:"is_main"`
}

type seedUser struct {
	Username     string      `json:"username"`
	KnownAs      string      `json:"known_as"`
	Gender       string      `json:"gender"`
	DateOfBirth  string      `json:"date_of_birth"`
	City         string      `json:"city"`
	Country      string      `json:"country"`
	Introduction string      `json:"introduction"`
	LookingFor   string      `json:"looking_for"`
	Interests    string      `json:"interests"`
	Photos       []seedPhoto `json:"photos"`
}

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	if len(os.Args) != 2 {
		fmt.Println("Usage:")
		fmt.Println("  seed <users.json>   # load member seed data")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		color.Red("cannot read seed file: %v", err)
		os.Exit(1)
	}
	var seeds []seedUser
	if err := json.Unmarshal(data, &seeds); err != nil {
		color.Red("invalid seed file: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		color.Red("database connection error: %v", err)
		os.Exit(1)
	}
	defer db.Close()
	userDAO := dao.NewUserDAO(db.DB)

	created, skipped := 0, 0
	for _, s := range seeds {
		existing, err := userDAO.GetUserByUsername(ctx, s.Username)
		if err != nil {
			color.Red("lookup failed for %s: %v", s.Username, err)
			os.Exit(1)
		}
		if existing != nil {
			color.Yellow("skip %s (already exists)", s.Username)
			skipped++
			continue
		}

		dob, err := time.Parse("2006-01-02", s.DateOfBirth)
		if err != nil {
			color.Red("bad date_of_birth for %s: %v", s.Username, err)
			os.Exit(1)
		}
		user := models.User{
			Username:     s.Username,
			KnownAs:      s.KnownAs,
			Gender:       s.Gender,
			DateOfBirth:  dob,
			City:         s.City,
			Country:      s.Country,
			Introduction: s.Introduction,
			LookingFor:   s.LookingFor,
			Interests:    s.Interests,
		}
		for _, p := range s.Photos {
			user.Photos = append(user.Photos, models.Photo{
				URL:      p.URL,
				PublicID: p.PublicID,
				IsMain:   p.IsMain,
			})
		}
		if err := userDAO.CreateUser(ctx, &user); err != nil {
			color.Red("create failed for %s: %v", s.Username, err)
			os.Exit(1)
		}
		color.Green("seeded %s", s.Username)
		created++
	}

	color.Cyan("done: %d created, %d skipped", created, skipped)
}
