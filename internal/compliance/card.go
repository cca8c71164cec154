package compliance

import (
	"sort"
	"strings"
)

const otherFamily = "Other"

// CardRow is the descriptive data of one formula row.
type CardRow struct {
	Name            string
	Family          string
	FamilyIcon      string
	Profile         string // Top, Heart or Base
	OdorDescription string
	Weight          float64
}

// FamilyShare is the weight an olfactive family holds in a formula.
type FamilyShare struct {
	Name        string
	Icon        string
	TotalWeight float64
	Count       int
	Share       float64
}

// PyramidEntry is a row placed in the olfactive pyramid.
type PyramidEntry struct {
	Name            string
	Family          string
	FamilyIcon      string
	OdorDescription string
	Weight          float64
	Share           float64
}

// Pyramid splits a formula into top, heart and base notes.
type Pyramid struct {
	Top   []PyramidEntry
	Heart []PyramidEntry
	Base  []PyramidEntry
}

// Card summarises a formula by family and pyramid position.
type Card struct {
	Families    []FamilyShare
	Pyramid     Pyramid
	TotalWeight float64
	Count       int
}

// BuildCard groups rows by family (heaviest first) and by pyramid position.
func BuildCard(rows []CardRow) Card {
	total := 0.0
	for _, row := range rows {
		total += row.Weight
	}

	card := Card{TotalWeight: total, Count: len(rows)}
	byName := map[string]int{}
	for _, row := range rows {
		family := strings.TrimSpace(row.Family)
		if family == "" {
			family = otherFamily
		}
		idx, ok := byName[family]
		if !ok {
			idx = len(card.Families)
			byName[family] = idx
			card.Families = append(card.Families, FamilyShare{Name: family, Icon: row.FamilyIcon})
		}
		card.Families[idx].TotalWeight += row.Weight
		card.Families[idx].Count++

		entry := PyramidEntry{
			Name:            row.Name,
			Family:          row.Family,
			FamilyIcon:      row.FamilyIcon,
			OdorDescription: row.OdorDescription,
			Weight:          row.Weight,
			Share:           share(row.Weight, total),
		}
		switch strings.ToLower(strings.TrimSpace(row.Profile)) {
		case "top":
			card.Pyramid.Top = append(card.Pyramid.Top, entry)
		case "base":
			card.Pyramid.Base = append(card.Pyramid.Base, entry)
		default:
			card.Pyramid.Heart = append(card.Pyramid.Heart, entry)
		}
	}

	sort.SliceStable(card.Families, func(i, j int) bool {
		return card.Families[i].TotalWeight > card.Families[j].TotalWeight
	})
	for i := range card.Families {
		card.Families[i].Share = share(card.Families[i].TotalWeight, total)
	}
	return card
}
