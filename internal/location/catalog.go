package location

import (
	"github.com/julianstephens/rendezvous/internal/models"
)

// Catalog is an ordered set of known locations. Order is significant: it is
// the priority order used when a purpose set becomes a destination list.
type Catalog struct {
	locations []models.Location
	byName    map[string]int
}

// NewCatalog builds a catalog; a repeated name keeps its first position and
// spelling but takes the later entry's region and purposes.
func NewCatalog(locations []models.Location) *Catalog {
	c := &Catalog{byName: make(map[string]int)}
	for _, loc := range locations {
		c.Add(loc)
	}
	return c
}

// Add inserts or updates a location. An update keeps the stored name.
func (c *Catalog) Add(loc models.Location) {
	key := loc.Key()
	if i, ok := c.byName[key]; ok {
		loc.Name = c.locations[i].Name
		c.locations[i] = loc
		return
	}
	c.byName[key] = len(c.locations)
	c.locations = append(c.locations, loc)
}

// Lookup finds a location by case-insensitive name.
func (c *Catalog) Lookup(name string) (models.Location, bool) {
	i, ok := c.byName[models.NameKey(name)]
	if !ok {
		return models.Location{}, false
	}
	return c.locations[i], true
}

// All returns every location in priority order.
func (c *Catalog) All() []models.Location {
	out := make([]models.Location, len(c.locations))
	copy(out, c.locations)
	return out
}

// ForPurpose returns the locations serving p, in priority order.
func (c *Catalog) ForPurpose(p models.Purpose) []models.Location {
	var out []models.Location
	for _, loc := range c.locations {
		if loc.Serves(p) {
			out = append(out, loc)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.locations)
}

var defaultLocations = []models.Location{
	{Name: "NUS Medical Library", Region: "Kent Ridge", Purposes: models.PurposeMeet | models.PurposeStudy},
	{Name: "NUS Science Library", Region: "Kent Ridge", Purposes: models.PurposeMeet | models.PurposeStudy},
	{Name: "NUS Central Library", Region: "Kent Ridge", Purposes: models.PurposeMeet | models.PurposeStudy},
	{Name: "Frontier", Region: "Kent Ridge", Purposes: models.PurposeMeet | models.PurposeEat},
	{Name: "The Deck", Region: "Kent Ridge", Purposes: models.PurposeMeet | models.PurposeEat},
	{Name: "Prince Georges Park", Region: "Kent Ridge", Purposes: models.PurposeEat},
	{Name: "The Terrace", Region: "Kent Ridge", Purposes: models.PurposeEat},
	{Name: "UTown Green", Region: "University Town", Purposes: models.PurposeMeet},
	{Name: "Fine Food", Region: "University Town", Purposes: models.PurposeMeet | models.PurposeEat},
	{Name: "Kent Ridge MRT", Region: "Kent Ridge", Purposes: models.PurposeMeet},
	{Name: "Jurong Point", Region: "Boon Lay", Purposes: models.PurposeMeet | models.PurposeEat},
	{Name: "Tampines Regional Library", Region: "Tampines", Purposes: models.PurposeStudy},
}

// DefaultCatalog returns the built-in campus catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultLocations)
}

// MeetLocations, StudyLocations and EatLocations are the built-in purpose sets.
func MeetLocations() []models.Location  { return DefaultCatalog().ForPurpose(models.PurposeMeet) }
func StudyLocations() []models.Location { return DefaultCatalog().ForPurpose(models.PurposeStudy) }
func EatLocations() []models.Location   { return DefaultCatalog().ForPurpose(models.PurposeEat) }
