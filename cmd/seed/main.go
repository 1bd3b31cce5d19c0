package main

import (
	"flag"

	"github.com/GDG-Vishnu/community-platform/config"
	"github.com/GDG-Vishnu/community-platform/db"
	"github.com/GDG-Vishnu/community-platform/logx"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/seed"
)

func main() {
	path := flag.String("file", "seed.yaml", "path to the seed file")
	flag.Parse()

	config.LoadConfig()
	db.Init()

	file, err := seed.Load(*path)
	if err != nil {
		logx.Fatal("Failed to read seed file:", err)
	}
	if err := seed.Apply(repositories.New(), file); err != nil {
		logx.Fatal("Seeding failed:", err)
	}
	logx.Info("Seeding complete")
}
