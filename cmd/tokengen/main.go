// Command tokengen mints a bearer token for a trigger source to present on
// event delivery.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/fkkmemi/boardsync/internal/server/auth"
)

func main() {

	source := flag.String("source", "trigger", "trigger source identifier")
	secret := flag.String("s", "", "shared HMAC secret (must match the server)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token validity duration")
	flag.Parse()

	if *secret == "" {
		log.Fatal("secret is required")
	}

	token, err := auth.GenerateToken(*source, []byte(*secret), *ttl)
	if err != nil {
		log.Fatalf("token generation error: %v", err)
	}

	fmt.Println(token)
}
