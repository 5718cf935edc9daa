package external

// WeaponData represents SRD weapon information from the external source
type WeaponData struct {
	ID             string
	Name           string
	Category       string
	WeaponCategory string
	WeaponRange    string
	DamageDice     string
	DamageType     string
	Properties     []string
}

// IsRanged reports whether the SRD lists the weapon as ranged
func (w *WeaponData) IsRanged() bool {
	return w.WeaponRange == "Ranged"
}
