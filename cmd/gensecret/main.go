package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	length := flag.Int("length", 48, "Secret length in bytes")
	flag.Parse()

	if *length < 16 {
		fmt.Fprintln(os.Stderr, "Secret must be at least 16 bytes")
		os.Exit(1)
	}

	secret := make([]byte, *length)
	if _, err := rand.Read(secret); err != nil {
		log.Fatalf("Failed to generate secret: %v", err)
	}

	fmt.Printf("JWT_SECRET=%s\n", base64.URLEncoding.EncodeToString(secret))
	fmt.Println("\nAdd this to your .env file. Rotating the secret invalidates")
	fmt.Println("every outstanding token immediately.")
}
