// Package category holds the static registry of legal document categories.
// Categories are defined at process start, never mutated, and looked up by ID.
package category

// Stable category identifiers. They double as URL path segments.
const (
	EvictionNotice           = "eviction-notice"
	WageTheft                = "wage-theft"
	EmploymentDiscrimination = "employment-discrimination"
	ContractDispute          = "contract-dispute"
	ConsumerRights           = "consumer-rights"
	FamilyLaw                = "family-law"
	ImmigrationPetition      = "immigration-petition"
)

// Category is an immutable class of legal document.
type Category struct {
	ID          string
	Title       string
	Description string
	// Icon and Color are presentation hints for clients.
	Icon  string
	Color string
}

// Registry is an ordered, read-only table of categories.
type Registry struct {
	ordered []Category
	byID    map[string]int
}

// NewRegistry builds a registry from categories, keeping their order.
// Later duplicates of an ID are ignored.
func NewRegistry(categories ...Category) *Registry {
	r := &Registry{
		ordered: make([]Category, 0, len(categories)),
		byID:    make(map[string]int, len(categories)),
	}
	for _, c := range categories {
		if _, dup := r.byID[c.ID]; dup {
			continue
		}
		r.byID[c.ID] = len(r.ordered)
		r.ordered = append(r.ordered, c)
	}
	return r
}

// Default returns the registry of built-in categories in display order.
func Default() *Registry {
	return NewRegistry(builtin...)
}

// List returns every category in display order. The returned slice is a copy.
func (r *Registry) List() []Category {
	out := make([]Category, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Get looks up a category by ID. An unknown ID is reported through ok, not an error.
func (r *Registry) Get(id string) (Category, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Category{}, false
	}
	return r.ordered[idx], true
}

// Has reports whether id names a registered category.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

var builtin = []Category{
	{
		ID:          EvictionNotice,
		Title:       "Eviction Notice",
		Description: "Create formal notices for tenant eviction based on legal grounds",
		Icon:        "building",
		Color:       "red",
	},
	{
		ID:          WageTheft,
		Title:       "Wage Theft Complaint",
		Description: "Generate documents to claim unpaid wages or labor violations",
		Icon:        "briefcase",
		Color:       "yellow",
	},
	{
		ID:          EmploymentDiscrimination,
		Title:       "Employment Discrimination",
		Description: "Prepare documents for workplace discrimination claims",
		Icon:        "users",
		Color:       "blue",
	},
	{
		ID:          ContractDispute,
		Title:       "Contract Dispute",
		Description: "Create documents for breach of contract or contractual disputes",
		Icon:        "file-text",
		Color:       "purple",
	},
	{
		ID:          ConsumerRights,
		Title:       "Consumer Rights",
		Description: "Generate documents for consumer protection and rights claims",
		Icon:        "shopping-bag",
		Color:       "green",
	},
	{
		ID:          FamilyLaw,
		Title:       "Family Law",
		Description: "Prepare documents for family-related legal matters",
		Icon:        "home",
		Color:       "pink",
	},
	{
		ID:          ImmigrationPetition,
		Title:       "Immigration Petition",
		Description: "Create immigration-related documents and petitions",
		Icon:        "globe",
		Color:       "indigo",
	},
}
