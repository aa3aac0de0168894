package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/models"
)

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// parse returns done=true when -h was requested and usage has been printed.
func parse(fs *flag.FlagSet, args []string) (done bool, err error) {
	err = fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return false, nil
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.api.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) signup(ctx context.Context, args []string) error {
	var user models.User

	fs := a.newFlagSet("signup")
	fs.StringVar(&user.Email, "email", "", "Email address")
	fs.StringVar(&user.Password, "password", "", "Password")
	fs.StringVar(&user.Username, "username", "", "Display name")
	if done, err := parse(fs, args); done || err != nil {
		return err
	}

	profile, err := a.api.CreateUser(ctx, user)
	if err != nil {
		return err
	}
	return a.print(profile)
}

// login prints the issued token. Export it as ADAPTER_TOKEN to use it in
// later invocations.
func (a *App) login(ctx context.Context, args []string) error {
	var credentials models.Credentials

	fs := a.newFlagSet("login")
	fs.StringVar(&credentials.Email, "email", "", "Email address")
	fs.StringVar(&credentials.Password, "password", "", "Password")
	if done, err := parse(fs, args); done || err != nil {
		return err
	}

	token, err := a.api.CreateToken(ctx, credentials)
	if err != nil {
		return err
	}
	return a.print(models.TokenResponse{Token: token})
}

func (a *App) me(ctx context.Context, args []string) error {
	var email, username, password string

	fs := a.newFlagSet("me")
	fs.StringVar(&email, "email", "", "New email address")
	fs.StringVar(&username, "username", "", "New display name")
	fs.StringVar(&password, "password", "", "New password")
	if done, err := parse(fs, args); done || err != nil {
		return err
	}

	var update models.UserUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "email":
			update.Email = &email
		case "username":
			update.Username = &username
		case "password":
			update.Password = &password
		}
	})

	var (
		profile models.UserProfile
		err     error
	)
	if fs.NFlag() == 0 {
		profile, err = a.api.GetProfile(ctx)
	} else {
		profile, err = a.api.UpdateProfile(ctx, update)
	}
	if err != nil {
		return err
	}
	return a.print(profile)
}

// catalog handles "list", "add", "rename" and "rm" for tags or ingredients.
func (a *App) catalog(catalog adapter.Catalog) commandFunc {
	return func(ctx context.Context, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("%w: %s list|add|rename|rm", ErrMissingCommand, catalog)
		}

		name := string(catalog) + " " + args[0]
		switch args[0] {
		case "list":
			var assignedOnly bool
			fs := a.newFlagSet(name)
			fs.BoolVar(&assignedOnly, "assigned", false, "Only entries used by at least one recipe")
			if done, err := parse(fs, args[1:]); done || err != nil {
				return err
			}

			items, err := a.api.ListCatalog(ctx, catalog, assignedOnly)
			if err != nil {
				return err
			}
			return a.print(items)

		case "add":
			var entry string
			fs := a.newFlagSet(name)
			fs.StringVar(&entry, "name", "", "Name")
			if done, err := parse(fs, args[1:]); done || err != nil {
				return err
			}
			if entry == "" {
				return fmt.Errorf("%w: -name", ErrMissingArgument)
			}

			item, err := a.api.CreateCatalogEntry(ctx, catalog, entry)
			if err != nil {
				return err
			}
			return a.print(item)

		case "rename":
			var id int64
			var entry string
			fs := a.newFlagSet(name)
			fs.Int64Var(&id, "id", 0, "Entry id")
			fs.StringVar(&entry, "name", "", "New name")
			if done, err := parse(fs, args[1:]); done || err != nil {
				return err
			}
			if id <= 0 {
				return fmt.Errorf("%w: -id", ErrMissingArgument)
			}

			item, err := a.api.RenameCatalogEntry(ctx, catalog, id, entry)
			if err != nil {
				return err
			}
			return a.print(item)

		case "rm":
			var id int64
			fs := a.newFlagSet(name)
			fs.Int64Var(&id, "id", 0, "Entry id")
			if done, err := parse(fs, args[1:]); done || err != nil {
				return err
			}
			if id <= 0 {
				return fmt.Errorf("%w: -id", ErrMissingArgument)
			}

			return a.api.DeleteCatalogEntry(ctx, catalog, id)
		}

		return fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}
}

func (a *App) recipes(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: recipes list|show|add|edit|rm|image", ErrMissingCommand)
	}

	name := "recipes " + args[0]
	switch args[0] {
	case "list":
		var tags, ingredients idList
		fs := a.newFlagSet(name)
		fs.Var(&tags, "tags", "Comma-separated tag ids")
		fs.Var(&ingredients, "ingredients", "Comma-separated ingredient ids")
		if done, err := parse(fs, args[1:]); done || err != nil {
			return err
		}

		recipes, err := a.api.ListRecipes(ctx, models.RecipeFilter{TagIDs: tags, IngredientIDs: ingredients})
		if err != nil {
			return err
		}
		return a.print(recipes)

	case "show":
		id, err := a.parseID(name, args[1:])
		if err != nil {
			return err
		}

		recipe, err := a.api.GetRecipe(ctx, id)
		if err != nil {
			return err
		}
		return a.print(recipe)

	case "add", "edit":
		return a.saveRecipe(ctx, name, args[0] == "edit", args[1:])

	case "rm":
		id, err := a.parseID(name, args[1:])
		if err != nil {
			return err
		}
		return a.api.DeleteRecipe(ctx, id)

	case "image":
		var id int64
		var path string
		fs := a.newFlagSet(name)
		fs.Int64Var(&id, "id", 0, "Recipe id")
		fs.StringVar(&path, "file", "", "Image file path")
		if done, err := parse(fs, args[1:]); done || err != nil {
			return err
		}
		if id <= 0 || path == "" {
			return fmt.Errorf("%w: -id and -file", ErrMissingArgument)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading image file: %w", err)
		}

		image, err := a.api.UploadRecipeImage(ctx, id, filepath.Base(path), data)
		if err != nil {
			return err
		}
		return a.print(image)
	}

	return fmt.Errorf("%w %q", ErrUnknownCommand, name)
}

// saveRecipe creates a recipe, or with edit set patches the recipe given by
// -id with only the flags present on the command line.
func (a *App) saveRecipe(ctx context.Context, name string, edit bool, args []string) error {
	var (
		id          int64
		title       string
		timeMinutes int
		price       string
		link        string
		tags        idList
		ingredients idList
	)

	fs := a.newFlagSet(name)
	if edit {
		fs.Int64Var(&id, "id", 0, "Recipe id")
	}
	fs.StringVar(&title, "title", "", "Title")
	fs.IntVar(&timeMinutes, "time", 0, "Preparation time in minutes")
	fs.StringVar(&price, "price", "", "Price, e.g. 4.50")
	fs.StringVar(&link, "link", "", "External link")
	fs.Var(&tags, "tags", "Comma-separated tag ids")
	fs.Var(&ingredients, "ingredients", "Comma-separated ingredient ids")
	if done, err := parse(fs, args); done || err != nil {
		return err
	}
	if edit && id <= 0 {
		return fmt.Errorf("%w: -id", ErrMissingArgument)
	}

	var in models.RecipeInput
	var priceErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			in.Title = &title
		case "time":
			in.TimeMinutes = &timeMinutes
		case "price":
			p, err := models.NewPrice(price)
			if err != nil {
				priceErr = fmt.Errorf("%w: -price %q", ErrInvalidArgument, price)
				return
			}
			in.Price = &p
		case "link":
			in.Link = &link
		case "tags":
			ids := []int64(tags)
			in.TagIDs = &ids
		case "ingredients":
			ids := []int64(ingredients)
			in.IngredientIDs = &ids
		}
	})
	if priceErr != nil {
		return priceErr
	}

	var (
		recipe models.Recipe
		err    error
	)
	if edit {
		recipe, err = a.api.UpdateRecipe(ctx, id, in)
	} else {
		recipe, err = a.api.CreateRecipe(ctx, in)
	}
	if err != nil {
		return err
	}
	return a.print(recipe)
}

func (a *App) parseID(name string, args []string) (int64, error) {
	var id int64
	fs := a.newFlagSet(name)
	fs.Int64Var(&id, "id", 0, "Recipe id")
	if _, err := parse(fs, args); err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: -id", ErrMissingArgument)
	}
	return id, nil
}

// idList is a comma-separated list of ids. It implements flag.Value; an
// empty value yields an empty, non-nil list.
type idList []int64

func (l *idList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, id := range *l {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

func (l *idList) Set(s string) error {
	ids := make([]int64, 0)
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", part)
		}
		ids = append(ids, id)
	}
	*l = ids
	return nil
}
