package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/trananh2004/shopfront/internal/common"
)

// Avatar prompts for an image file, compresses it and persists it as the
// new profile avatar. The flow is independent of edit mode.
func (a *App) Avatar(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter path to image file", os.Stdout)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Println("Cannot open file:", err)
		return err
	}
	defer f.Close()

	if err := a.profiles.UpdateAvatar(ctx, f); err != nil {
		switch {
		case errors.Is(err, common.ErrImageDecode):
			fmt.Println("File is not a supported image")
		case errors.Is(err, common.ErrNotLoggedIn):
			fmt.Println("Log in first")
		default:
			fmt.Println("Avatar update failed:", err)
		}
		return err
	}

	fmt.Println("Avatar updated")
	return nil
}
