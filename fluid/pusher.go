package fluid

import "math"

// UpdateMomentumHigueraCary advances the bulk momentum (ux,uy,uz) under
// the Lorentz force from (ex,ey,ez,bx,by,bz) over dt, for a species of
// charge q and mass m. The scheme is the exact volume-preserving
// Higuera-Cary splitting: half electric push, magnetic rotation about the
// half-step Lorentz factor, half electric push. With zero fields the
// momentum is returned bit-identical.
func UpdateMomentumHigueraCary(ux, uy, uz, ex, ey, ez, bx, by, bz,
	q, m, dt float64) (uxNew, uyNew, uzNew float64) {
	var (
		econst = 0.5 * q * dt / m
		invCSq = 1.0 / (Clight * Clight)
	)
	// First half electric push
	umx := ux + econst*ex
	umy := uy + econst*ey
	umz := uz + econst*ez

	gammaM := math.Sqrt(1 + (umx*umx+umy*umy+umz*umz)*invCSq)

	betaX := econst * bx
	betaY := econst * by
	betaZ := econst * bz
	betaSq := betaX*betaX + betaY*betaY + betaZ*betaZ

	sigma := gammaM*gammaM - betaSq
	uStar := (umx*betaX + umy*betaY + umz*betaZ) / Clight

	// Half-step Lorentz factor, exact root of the quartic
	gammaP := math.Sqrt(0.5 * (sigma +
		math.Sqrt(sigma*sigma+4*(betaSq+uStar*uStar))))

	tx := betaX / gammaP
	ty := betaY / gammaP
	tz := betaZ / gammaP
	s := 1.0 / (1 + tx*tx + ty*ty + tz*tz)
	ut := umx*tx + umy*ty + umz*tz

	upx := s * (umx + ut*tx + umy*tz - umz*ty)
	upy := s * (umy + ut*ty + umz*tx - umx*tz)
	upz := s * (umz + ut*tz + umx*ty - umy*tx)

	// Second half electric push plus the rotation completion
	uxNew = upx + econst*ex + upy*tz - upz*ty
	uyNew = upy + econst*ey + upz*tx - upx*tz
	uzNew = upz + econst*ez + upx*ty - upy*tx
	return
}
