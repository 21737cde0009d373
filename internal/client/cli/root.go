package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if identity, ok := a.session.Current(); ok {
		s = identity.Email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the interactive command loop until EOF or an explicit exit.
// Command handlers print their own errors, so failures here are ignored
// and the loop keeps going.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to Shopfront CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("shop %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: profile, edit, avatar, password, products, product, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, products, product, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "edit":
			_ = a.Edit(ctx)
		case "avatar":
			_ = a.Avatar(ctx)
		case "password":
			_ = a.Password(ctx)
		case "products":
			_ = a.Products(ctx)
		case "product":
			_ = a.Product(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
