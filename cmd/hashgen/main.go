package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// Утилита для выпуска bcrypt-хэша пароля администратора,
// который кладётся в окружение бэкенда (ADMIN_PASSWORD_HASH).
func main() {
	var password string
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		fmt.Print("Пароль: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Не удалось прочитать пароль: %v\n", err)
			os.Exit(1)
		}
		password = string(raw)
	}

	if password == "" {
		fmt.Fprintln(os.Stderr, "Пустой пароль.")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось построить хэш: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(hash))
}
