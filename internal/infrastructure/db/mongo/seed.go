package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/stormapp/canteen-api/internal/core/domain"
)

const collectionSeedClaim = "mock_data_execution"

// seedClaimID is the _id of the single claim document gating mock-data
// population: the first deployment to upsert it seeds, everyone else skips.
const seedClaimID = "mock_data_flag"

// Seeder populates the store with demo categories, menu items, selections
// and accounts. Run is safe to call from every instance on every start.
type Seeder struct {
	db  *mongo.Database
	log zerolog.Logger
}

func NewSeeder(db *mongo.Database, log zerolog.Logger) *Seeder {
	return &Seeder{db: db, log: log}
}

// Run claims the seed flag and, when this process wins the claim, inserts
// the mock data set. Losing the claim is the normal case after first boot.
func (s *Seeder) Run(ctx context.Context) error {
	claimed, err := s.claim(ctx)
	if err != nil {
		return fmt.Errorf("seed claim: %w", err)
	}
	if !claimed {
		s.log.Info().Msg("mock data already populated, skipping")
		return nil
	}

	if err := s.insertMockData(ctx); err != nil {
		return fmt.Errorf("seed insert: %w", err)
	}

	s.log.Info().Msg("mock data populated")
	return nil
}

func (s *Seeder) claim(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.db.Collection(collectionSeedClaim).UpdateOne(ctx,
		bson.M{"_id": seedClaimID},
		bson.M{"$setOnInsert": bson.M{
			"executed":  true,
			"timestamp": time.Now().Unix(),
			"instance":  uuid.NewString(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount == 1, nil
}

func (s *Seeder) insertMockData(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	categoryNames := []string{
		"Breakfast",
		"Regular Lunch",
		"Diet Lunch",
		"Mini Meals",
		"Regular Dinner",
		"Diet Dinner",
		"Supper",
		"Special Item",
	}

	categories := make([]interface{}, 0, len(categoryNames))
	for _, name := range categoryNames {
		categories = append(categories, domain.Category{CategoryID: uuid.NewString(), Name: name})
	}
	if _, err := s.db.Collection(collectionCategories).InsertMany(ctx, categories); err != nil {
		return err
	}

	item := func(name, description string, cats ...string) domain.MenuItem {
		return domain.MenuItem{
			MenuItemID:  uuid.NewString(),
			Name:        name,
			Description: description,
			Categories:  cats,
		}
	}

	items := []domain.MenuItem{
		item("Scrambled Eggs", "Fluffy scrambled eggs with herbs", "Breakfast"),
		item("Pancakes", "Golden pancakes with maple syrup", "Breakfast"),
		item("Oatmeal Bowl", "Healthy oatmeal with fresh berries", "Breakfast"),
		item("French Toast", "Classic French toast with cinnamon", "Breakfast"),
		item("Fruit Salad", "Fresh seasonal fruit medley", "Breakfast", "Mini Meals"),
		item("Grilled Chicken Breast", "Tender grilled chicken with herbs", "Regular Lunch", "Regular Dinner"),
		item("Beef Lasagna", "Classic Italian lasagna with rich meat sauce", "Regular Lunch"),
		item("Spaghetti Carbonara", "Creamy pasta with bacon and parmesan", "Regular Lunch", "Regular Dinner"),
		item("BBQ Ribs", "Slow-cooked ribs with tangy BBQ sauce", "Regular Lunch", "Regular Dinner"),
		item("Fish and Chips", "Crispy battered fish with golden fries", "Regular Lunch"),
		item("Grilled Salmon", "Fresh salmon fillet with lemon", "Diet Lunch", "Diet Dinner"),
		item("Caesar Salad", "Crisp romaine with light Caesar dressing", "Diet Lunch", "Diet Dinner"),
		item("Quinoa Bowl", "Nutritious quinoa with roasted vegetables", "Diet Lunch", "Diet Dinner"),
		item("Grilled Chicken Salad", "Mixed greens with grilled chicken strips", "Diet Lunch", "Diet Dinner"),
		item("Vegetable Stir Fry", "Fresh vegetables in light sauce", "Diet Lunch", "Diet Dinner"),
		item("Chicken Wrap", "Grilled chicken in a soft tortilla", "Mini Meals"),
		item("Soup of the Day", "Homemade soup with fresh ingredients", "Mini Meals"),
		item("Club Sandwich", "Triple-decker sandwich with turkey and bacon", "Mini Meals"),
		item("Veggie Spring Rolls", "Crispy spring rolls with sweet chili sauce", "Mini Meals"),
		item("Cheese Quesadilla", "Melted cheese in a crispy tortilla", "Mini Meals"),
		item("Beef Steak", "Premium cut steak cooked to perfection", "Regular Dinner"),
		item("Roast Turkey", "Succulent roasted turkey with gravy", "Regular Dinner"),
		item("Pork Chops", "Juicy pork chops with apple sauce", "Regular Dinner"),
		item("Chicken Parmesan", "Breaded chicken with marinara and mozzarella", "Regular Dinner"),
		item("Steamed Vegetables", "Assorted steamed vegetables with herbs", "Diet Dinner"),
		item("Baked Cod", "Light and flaky baked cod fillet", "Diet Dinner"),
		item("Turkey Breast", "Lean turkey breast with herbs", "Diet Dinner"),
		item("Cheese and Crackers", "Assorted cheeses with gourmet crackers", "Supper"),
		item("Yogurt Parfait", "Greek yogurt with granola and honey", "Supper"),
		item("Toast with Jam", "Whole grain toast with fruit preserves", "Supper"),
		item("Hot Chocolate", "Rich hot chocolate with marshmallows", "Supper"),
		item("Lobster Thermidor", "Luxurious lobster in creamy sauce", "Special Item"),
		item("Prime Rib", "Slow-roasted prime rib with au jus", "Special Item"),
		item("Surf and Turf", "Steak and lobster tail combination", "Special Item"),
		item("Chef's Special Pasta", "Signature pasta dish with seasonal ingredients", "Special Item"),
		item("Chocolate Lava Cake", "Decadent chocolate cake with molten center", "Special Item"),
	}

	itemDocs := make([]interface{}, 0, len(items))
	for _, it := range items {
		itemDocs = append(itemDocs, it)
	}
	if _, err := s.db.Collection(collectionMenuItems).InsertMany(ctx, itemDocs); err != nil {
		return err
	}

	// Three sample users pick the nth item of every category for today, so
	// the daily display has data to aggregate immediately.
	nthByCategory := func(n int) map[string]string {
		selections := make(map[string]string, len(categoryNames))
		for _, cat := range categoryNames {
			count := 0
			for _, it := range items {
				for _, c := range it.Categories {
					if c == cat {
						if count == n {
							selections[cat] = it.MenuItemID
						}
						count++
						break
					}
				}
			}
		}
		return selections
	}

	today := time.Now().UTC().Format("2006-01-02")
	selections := make([]interface{}, 0, 3)
	for n, userID := range []string{"user_001", "user_002", "user_003"} {
		selections = append(selections, domain.UserSelection{
			UserSelectionID: uuid.NewString(),
			UserID:          userID,
			Date:            today,
			Selections:      nthByCategory(n),
		})
	}
	if _, err := s.db.Collection(collectionSelections).InsertMany(ctx, selections); err != nil {
		return err
	}

	// Demo accounts for local use.
	accounts := []struct {
		email, name, password, role string
	}{
		{"admin@canteen.local", "Canteen Admin", "admin123", domain.RoleAdmin},
		{"user@canteen.local", "Canteen User", "user123", domain.RoleUser},
	}
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		doc := mongoUser{Email: a.email, Name: a.name, PasswordHash: string(hash), Role: a.role}
		if _, err := s.db.Collection(collectionAuthUsers).InsertOne(ctx, doc); err != nil {
			return err
		}
	}

	return nil
}
