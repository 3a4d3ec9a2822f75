package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"cookbook/internal/config"
	"cookbook/internal/db"
	"cookbook/internal/kvstore"
	"cookbook/internal/recipes"
	"cookbook/models"
)

var cleanWhitespace = regexp.MustCompile(`\s+`)

// Section keywords recognised in the extracted text. Everything between a
// "Recipe:" line and the next one belongs to that recipe.
const (
	recipeMarker       = "Recipe:"
	tagsMarker         = "Tags:"
	ratingMarker       = "Rating:"
	ingredientsMarker  = "Ingredients:"
	instructionsMarker = "Instructions:"
	notesMarker        = "Notes:"
)

func main() {
	pdfPath := "recipes.pdf"
	if len(os.Args) > 1 {
		pdfPath = os.Args[1]
	}

	if err := run(pdfPath); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(pdfPath string) error {
	if strings.TrimSpace(pdfPath) == "" {
		return fmt.Errorf("pdf path must not be empty")
	}

	if _, err := os.Stat(pdfPath); err != nil {
		return fmt.Errorf("locate pdf: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	database, err := db.Initialize(cfg.Store)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(database); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	text, err := extractText(pdfPath)
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}

	parsed := parseRecipes(text)
	if len(parsed) == 0 {
		return fmt.Errorf("no recipes found in %s", filepath.Base(pdfPath))
	}

	ctx := context.Background()
	repo := recipes.NewRepository(recipes.NewGateway(kvstore.NewGormStore(database)))

	imported := 0
	for _, recipe := range parsed {
		if err := upsertRecipe(ctx, repo, recipe); err != nil {
			return fmt.Errorf("import %q: %w", recipe.Title, err)
		}
		imported++
	}

	fmt.Fprintf(os.Stdout, "Imported %d recipes from %s\n", imported, filepath.Base(pdfPath))
	return nil
}

func extractText(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// parseRecipes walks the extracted text line by line. A "Recipe:" line opens
// a new block; the section markers switch what the following lines feed.
func parseRecipes(text string) []models.Recipe {
	var (
		parsed  []models.Recipe
		current *models.Recipe
		section string
	)

	flush := func() {
		if current == nil {
			return
		}
		if recipe, ok := normalizeRecipe(*current); ok {
			parsed = append(parsed, recipe)
		}
		current = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if title, ok := strings.CutPrefix(line, recipeMarker); ok {
			flush()
			current = &models.Recipe{Title: strings.TrimSpace(title)}
			section = ""
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case strings.HasPrefix(line, tagsMarker):
			current.Tags = strings.TrimSpace(strings.TrimPrefix(line, tagsMarker))
		case strings.HasPrefix(line, ratingMarker):
			current.Rating = parseRating(strings.TrimPrefix(line, ratingMarker))
		case line == ingredientsMarker:
			section = ingredientsMarker
		case line == instructionsMarker:
			section = instructionsMarker
		case line == notesMarker:
			section = notesMarker
		default:
			switch section {
			case ingredientsMarker:
				if ingredient, ok := parseIngredient(line); ok {
					current.Ingredients = append(current.Ingredients, ingredient)
				}
			case instructionsMarker:
				current.Instructions = appendLine(current.Instructions, line)
			case notesMarker:
				current.Notes = appendLine(current.Notes, line)
			}
		}
	}
	flush()

	return parsed
}

// parseIngredient reads a "Name - quantity unit" row. Rows without both a
// name and a quantity are skipped, matching what the recipe form persists.
func parseIngredient(line string) (models.Ingredient, bool) {
	line = strings.TrimLeft(line, "-• \t")

	name, amount, found := strings.Cut(line, " - ")
	if !found {
		return models.Ingredient{}, false
	}

	name = strings.TrimSpace(name)
	amount = strings.TrimSpace(amount)
	if name == "" || amount == "" {
		return models.Ingredient{}, false
	}

	quantity, unit, _ := strings.Cut(amount, " ")
	ingredient := models.Ingredient{
		Name:        name,
		Quantity:    strings.TrimSpace(quantity),
		Measurement: normalizeUnit(unit),
	}
	if ingredient.Quantity == "" {
		return models.Ingredient{}, false
	}
	return ingredient, true
}

// normalizeUnit maps a unit token onto the catalog, falling back to the
// default unit for anything unrecognised.
func normalizeUnit(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return models.DefaultUnitCode()
	}
	for _, unit := range models.Units(models.UnitSystemEU) {
		if token == unit.Code || token == strings.ToLower(unit.Long) {
			return unit.Code
		}
	}
	return models.DefaultUnitCode()
}

func parseRating(value string) *float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || parsed < 0 || parsed > 5 {
		return nil
	}
	return &parsed
}

func appendLine(existing, line string) string {
	line = cleanWhitespace.ReplaceAllString(line, " ")
	if existing == "" {
		return line
	}
	return existing + "\n" + line
}

// normalizeRecipe applies the same validation the recipe form does: an empty
// title drops the block entirely.
func normalizeRecipe(recipe models.Recipe) (models.Recipe, bool) {
	recipe.Title = strings.TrimSpace(recipe.Title)
	if recipe.Title == "" {
		return models.Recipe{}, false
	}
	return recipe, true
}

// upsertRecipe matches on title, case-insensitively. An existing recipe keeps
// its id and favorite copies; a new title is appended with a fresh id.
func upsertRecipe(ctx context.Context, repo *recipes.Repository, recipe models.Recipe) error {
	for _, existing := range repo.List(ctx) {
		if strings.EqualFold(existing.Title, recipe.Title) {
			if err := repo.Update(ctx, existing.ID, recipes.Patch{
				Title:        recipe.Title,
				Ingredients:  recipe.Ingredients,
				Instructions: recipe.Instructions,
				Tags:         recipe.Tags,
			}); err != nil {
				return err
			}
			if recipe.Notes != "" {
				if err := repo.SetNotes(ctx, existing.ID, recipe.Notes); err != nil {
					return err
				}
			}
			if recipe.Rating != nil {
				if err := repo.SetRating(ctx, existing.ID, recipe.Rating); err != nil {
					return err
				}
			}
			return nil
		}
	}

	_, err := repo.Create(ctx, recipe)
	return err
}
