package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Tour struct {
	ID               string         `json:"id" gorm:"primaryKey"`
	Slug             string         `json:"slug" gorm:"index"`
	Title            string         `json:"title"`
	Titles           datatypes.JSON `json:"titles"` // per-language titles (es, en, de, fr)
	Description      string         `json:"description" gorm:"type:text"`
	Descriptions     datatypes.JSON `json:"descriptions"`
	PriceNational    float64        `json:"priceNational"`
	PriceForeigner   float64        `json:"priceForeigner"`
	Category         string         `json:"category"` // Aventura, Naturaleza, Playa, Cultura, Volcán
	Province         string         `json:"province" gorm:"index"`
	Location         string         `json:"location"`
	ImageURL         string         `json:"imageUrl" gorm:"type:text"`
	Gallery          datatypes.JSON `json:"gallery"`
	Difficulty       string         `json:"difficulty"`
	DurationCategory string         `json:"durationCategory"` // Medio Día, Día Completo, Varios Días
	DurationText     string         `json:"durationText"`
	MinGroupSize     int            `json:"minGroupSize"`
	TourDate         string         `json:"tourDate"`
	HikingDistance   string         `json:"hikingDistance"`
	Included         datatypes.JSON `json:"included"`
	Recommendations  datatypes.JSON `json:"recommendations"`
	PickupLocations  datatypes.JSON `json:"pickupLocations"`
	PickupTime       string         `json:"pickupTime"`
	ReturnTime       string         `json:"returnTime"`
}

// Custom JSON marshaling to expose the JSON columns as real arrays/maps
func (t *Tour) MarshalJSON() ([]byte, error) {
	type Alias Tour
	aux := &struct {
		Titles          map[string]string `json:"titles"`
		Descriptions    map[string]string `json:"descriptions"`
		Gallery         []string          `json:"gallery"`
		Included        []string          `json:"included"`
		Recommendations []string          `json:"recommendations"`
		PickupLocations []string          `json:"pickupLocations"`
		*Alias
	}{
		Titles:          map[string]string{},
		Descriptions:    map[string]string{},
		Gallery:         []string{},
		Included:        []string{},
		Recommendations: []string{},
		PickupLocations: []string{},
		Alias:           (*Alias)(t),
	}

	if t.Titles != nil {
		var titles map[string]string
		if err := json.Unmarshal(t.Titles, &titles); err == nil {
			aux.Titles = titles
		}
	}
	if t.Descriptions != nil {
		var descriptions map[string]string
		if err := json.Unmarshal(t.Descriptions, &descriptions); err == nil {
			aux.Descriptions = descriptions
		}
	}
	if t.Gallery != nil {
		var gallery []string
		if err := json.Unmarshal(t.Gallery, &gallery); err == nil {
			aux.Gallery = gallery
		}
	}
	if t.Included != nil {
		var included []string
		if err := json.Unmarshal(t.Included, &included); err == nil {
			aux.Included = included
		}
	}
	if t.Recommendations != nil {
		var recommendations []string
		if err := json.Unmarshal(t.Recommendations, &recommendations); err == nil {
			aux.Recommendations = recommendations
		}
	}
	if t.PickupLocations != nil {
		var pickups []string
		if err := json.Unmarshal(t.PickupLocations, &pickups); err == nil {
			aux.PickupLocations = pickups
		}
	}

	return json.Marshal(aux)
}

// PickupLocationList decodes the pickup locations column for handlers that
// need to validate a chosen pickup point.
func (t *Tour) PickupLocationList() []string {
	var pickups []string
	if t.PickupLocations != nil {
		json.Unmarshal(t.PickupLocations, &pickups)
	}
	return pickups
}

// TitleFor returns the localized title, falling back to the base title.
func (t *Tour) TitleFor(lang string) string {
	if t.Titles != nil {
		var titles map[string]string
		if err := json.Unmarshal(t.Titles, &titles); err == nil {
			if title, ok := titles[lang]; ok && title != "" {
				return title
			}
		}
	}
	return t.Title
}
