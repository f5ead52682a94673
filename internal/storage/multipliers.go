package storage

type ComplexityMultipliers struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

type LodMultipliers struct {
	Standard float64 `json:"standard"`
	High     float64 `json:"high"`
}

// ScaleMultiplier — эффект масштаба: (baseArea/area)^exponent
type ScaleMultiplier struct {
	Enabled  bool    `json:"enabled"`
	BaseArea float64 `json:"baseArea"`
	Exponent float64 `json:"exponent"`
}

type GlobalMultipliers struct {
	Complexity ComplexityMultipliers `json:"complexity"`
	Lod        LodMultipliers        `json:"lod"`
	Express    float64               `json:"express"`
	Scale      *ScaleMultiplier      `json:"scale,omitempty"`
}
