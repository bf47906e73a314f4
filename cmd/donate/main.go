package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"hopebridge/cli"
)

func main() {
	env := cli.Environment{
		Stderr: os.Stderr,
		Stdout: os.Stdout,
		Stdin:  os.Stdin,
	}

	os.Exit(cli.Run(env))
}
