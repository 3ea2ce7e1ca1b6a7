// Package main seeds the character store with a demo character and prints
// its sheet URL for manual mini-app testing.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/louisbranch/zenstats/internal/charsheet"
	"github.com/louisbranch/zenstats/internal/charsheet/storage"
	"github.com/louisbranch/zenstats/internal/charsheet/storage/sqlite"
	"github.com/louisbranch/zenstats/internal/platform/config"
)

func main() {
	_ = godotenv.Load()

	dbPath := flag.String("db", "characters.db", "SQLite character store path")
	baseURL := flag.String("base-url", "http://localhost:8080/", "sheet page base URL")
	userID := flag.String("user", "demo", "chat user ID to seed")
	name := flag.String("name", "Tenzin", "character name")
	class := flag.String("class", "Monk", "character class")
	karma := flag.Int("karma", 250, "karma value")
	flag.Parse()

	state := charsheet.CharacterState{
		Name:         *name,
		Class:        *class,
		Wisdom:       charsheet.NewStat("18"),
		Intelligence: charsheet.NewStat("14"),
		Strength:     charsheet.NewStat("12"),
		Dexterity:    charsheet.NewStat("16"),
		Constitution: charsheet.NewStat("13"),
		Charisma:     charsheet.NewStat("10"),
		HP:           42,
		MaxHP:        50,
		Energy:       30,
		MaxEnergy:    40,
		Karma:        *karma,
		Abilities:    []string{"Meditate", "Focused Strike", "Inner Calm"},
	}

	ctx := context.Background()
	store, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		config.Exitf("open character store: %v", err)
	}
	defer func() { _ = store.Close() }()

	record := storage.CharacterRecord{UserID: *userID, State: state}
	if err := store.UpsertCharacter(ctx, record); err != nil {
		config.Exitf("seed character: %v", err)
	}

	sheetURL, err := charsheet.SheetURL(*baseURL, state)
	if err != nil {
		config.Exitf("build sheet url: %v", err)
	}
	fmt.Printf("seeded character %q (user %s)\n", *name, *userID)
	fmt.Println(sheetURL)
}
