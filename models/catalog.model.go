package models

// Plant, Disease and Medicine are plain content tables maintained by admins
// and read by everyone.

type Plant struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Name              string `gorm:"not null;size:100" json:"name"`
	ScientificName    string `gorm:"size:150" json:"scientific_name"`
	Category          string `gorm:"not null;size:50" json:"category"`
	Description       string `gorm:"type:text" json:"description"`
	GrowthSeason      string `gorm:"size:50" json:"growth_season"`
	GrowthRate        string `gorm:"size:50" json:"growth_rate"`
	WaterRequirements string `gorm:"size:100" json:"water_requirements"`
	LightRequirements string `gorm:"size:100" json:"light_requirements"`
	SoilType          string `gorm:"size:100" json:"soil_type"`
	CareInstructions  string `gorm:"type:text" json:"care_instructions"`
}

type Disease struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"not null;size:100" json:"name"`
	Description    string `gorm:"type:text" json:"description"`
	Symptoms       string `gorm:"type:text" json:"symptoms"`
	Cause          string `gorm:"size:255" json:"cause"`
	Prevention     string `gorm:"type:text" json:"prevention"`
	Treatment      string `gorm:"type:text" json:"treatment"`
	Severity       string `gorm:"size:50" json:"severity"`
	AffectedPlants string `gorm:"size:255" json:"affected_plants"`
}

type Medicine struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	Name               string `gorm:"not null;size:100" json:"name"`
	Type               string `gorm:"size:50" json:"type"`
	ActiveIngredient   string `gorm:"size:150" json:"active_ingredient"`
	Description        string `gorm:"type:text" json:"description"`
	Dosage             string `gorm:"size:100" json:"dosage"`
	ApplicationMethod  string `gorm:"size:150" json:"application_method"`
	TargetDiseases     string `gorm:"size:255" json:"target_diseases"`
	SafetyInstructions string `gorm:"type:text" json:"safety_instructions"`
	Manufacturer       string `gorm:"size:100" json:"manufacturer"`
}
