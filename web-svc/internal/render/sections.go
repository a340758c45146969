package render

import (
	"fmt"
	"strings"

	"foodtruck/web-svc/internal/domain"
)

const headerPlaceholder = "Loading..."

type CategoryGroup struct {
	Category string
	Items    []domain.MenuItem
}

// GroupByCategory partitions items by category. Groups appear in the order
// their category first occurs and keep the relative order of their items.
func GroupByCategory(items []domain.MenuItem) []CategoryGroup {
	groups := []CategoryGroup{}
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, CategoryGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

type Badge struct {
	Label   string
	Variant string
}

func badge(on bool, onLabel, offLabel string) Badge {
	if on {
		return Badge{Label: onLabel, Variant: "default"}
	}
	return Badge{Label: offLabel, Variant: "secondary"}
}

type MenuCard struct {
	ID          string
	Name        string
	Description string
	Price       string
	Badge       Badge
	Disabled    bool
}

func NewMenuCard(item domain.MenuItem) MenuCard {
	return MenuCard{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       FormatPrice(item.Price),
		Badge:       badge(item.Available, "Available", "Sold Out"),
		Disabled:    !item.Available,
	}
}

func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

type LocationCard struct {
	ID          string
	Name        string
	Address     string
	Schedule    string
	HasSchedule bool
	Badge       Badge
}

func NewLocationCard(loc domain.Location) LocationCard {
	schedule, ok := domain.Value(loc.Schedule)
	return LocationCard{
		ID:          loc.ID,
		Name:        loc.Name,
		Address:     loc.Address,
		Schedule:    schedule,
		HasSchedule: ok,
		Badge:       badge(loc.Active, "Active", "Inactive"),
	}
}

type MenuGroupView struct {
	Category string
	Cards    []MenuCard
}

type Header struct {
	Title       string
	Description string
	Phone       string
	HasPhone    bool
	Email       string
	HasEmail    bool
}

// NewHeader falls back to placeholder text when info is absent.
func NewHeader(info *domain.BusinessInfo) Header {
	if info == nil {
		return Header{Title: headerPlaceholder}
	}
	h := Header{Title: info.Name, Description: info.Description}
	if h.Title == "" {
		h.Title = headerPlaceholder
	}
	h.Phone, h.HasPhone = domain.Value(info.Phone)
	h.Email, h.HasEmail = domain.Value(info.Email)
	return h
}

type SocialLink struct {
	Network string
	Handle  string
	URL     string
}

// SocialLinks lists the configured profiles; absent handles produce no link.
func SocialLinks(sm *domain.SocialMedia) []SocialLink {
	links := []SocialLink{}
	if sm == nil {
		return links
	}
	if handle, ok := domain.Value(sm.Instagram); ok {
		links = append(links, SocialLink{
			Network: "instagram",
			Handle:  handle,
			URL:     "https://instagram.com/" + strings.TrimPrefix(handle, "@"),
		})
	}
	if handle, ok := domain.Value(sm.Facebook); ok {
		links = append(links, SocialLink{
			Network: "facebook",
			Handle:  handle,
			URL:     "https://facebook.com/" + handle,
		})
	}
	return links
}
