package fluid

// Physical constants (SI).
const (
	Clight = 299792458.0
	Ep0    = 8.8541878128e-12
	Qe     = 1.602176634e-19 // elementary charge, positive
	Me     = 9.1093837015e-31
)
