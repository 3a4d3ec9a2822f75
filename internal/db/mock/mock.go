package mock

import (
	"context"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cookbook/internal/kvstore"
	applog "cookbook/internal/log"
	"cookbook/internal/recipes"
	"cookbook/models"
)

// New returns an in-memory sqlite database seeded with representative
// recipe data, for demos and local development without a real store file.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:cookbook-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.StoreEntry{}); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	rating := func(v float64) *float64 { return &v }

	sourdough := models.Recipe{
		Title: "Overnight Sourdough",
		Ingredients: []models.Ingredient{
			{Name: "Bread flour", Quantity: "500", Measurement: "g"},
			{Name: "Water", Quantity: "350", Measurement: "ml"},
			{Name: "Starter", Quantity: "100", Measurement: "g"},
			{Name: "Salt", Quantity: "10", Measurement: "g"},
		},
		Instructions: "Mix flour and water, rest 30 minutes. Add starter and salt, fold every half hour for two hours, then proof overnight in the fridge. Bake in a covered pot at 240C for 40 minutes.",
		Tags:         "bread, weekend",
		Notes:        "Score deeper than feels reasonable.",
		Rating:       rating(4.5),
	}

	soup := models.Recipe{
		Title: "Roasted Tomato Soup",
		Ingredients: []models.Ingredient{
			{Name: "Tomatoes", Quantity: "1", Measurement: "kg"},
			{Name: "Olive oil", Quantity: "3", Measurement: "tbsp"},
			{Name: "Garlic", Quantity: "4", Measurement: "g"},
			{Name: "Vegetable stock", Quantity: "500", Measurement: "ml"},
		},
		Instructions: "Roast tomatoes and garlic with oil at 200C for 35 minutes. Blend with stock, simmer 10 minutes, season to taste.",
		Tags:         "soup, vegetarian",
		Rating:       rating(4),
	}

	pancakes := models.Recipe{
		Title: "Saturday Pancakes",
		Ingredients: []models.Ingredient{
			{Name: "Flour", Quantity: "200", Measurement: "g"},
			{Name: "Milk", Quantity: "300", Measurement: "ml"},
			{Name: "Eggs", Quantity: "2", Measurement: "g"},
		},
		Instructions: "Whisk everything into a smooth batter, rest 10 minutes, fry on medium heat until golden.",
		Tags:         "breakfast",
	}

	repo := recipes.NewRepository(recipes.NewGateway(kvstore.NewGormStore(db)))

	var favorite models.Recipe
	for i, recipe := range []models.Recipe{sourdough, soup, pancakes} {
		created, err := repo.Create(ctx, recipe)
		if err != nil {
			return err
		}
		if i == 0 {
			favorite = created
		}
	}

	if _, err := repo.ToggleFavorite(ctx, favorite); err != nil {
		return err
	}

	return nil
}
