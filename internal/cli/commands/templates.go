package commands

import (
	"fmt"
	"strings"

	"github.com/joaompneves/nx-dotnet/internal/config"
	"github.com/joaompneves/nx-dotnet/internal/templates"
)

// Templates lists installed project templates, optionally filtered.
// Usage: dotnetctl templates [search]
func Templates(cfg *config.Config, args []string) error {
	p := parseArgs(args)
	search := ""
	if len(p.positionals) > 0 {
		search = p.positionals[0]
	}

	client, err := loadClient(cfg)
	if err != nil {
		return err
	}

	cache := templates.NewCache(client.ListInstalledTemplates)
	list, err := cache.Get(search)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No templates found.")
		return nil
	}

	fmt.Printf("%-40s %-20s %-12s %s\n", "NAME", "SHORT NAMES", "LANGUAGES", "TAGS")
	for _, t := range list {
		fmt.Printf("%-40s %-20s %-12s %s\n",
			t.Name,
			strings.Join(t.ShortNames, ","),
			strings.Join(t.Languages, ","),
			strings.Join(t.Tags, "/"))
	}
	return nil
}
