package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: genhash <password> [cost]")
		os.Exit(2)
	}
	cost := bcrypt.DefaultCost
	if len(os.Args) > 2 {
		cost = cast.ToInt(os.Args[2])
	}
	h, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), cost)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt error")
	}
	fmt.Println(string(h))
}
