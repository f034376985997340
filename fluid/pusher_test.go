package fluid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateMomentumHigueraCary(t *testing.T) {
	var (
		q  = -Qe
		m  = Me
		dt = 1.e-16
	)
	// Zero fields return the momentum bit-identical
	{
		ux, uy, uz := 1.e7, -2.e7, 3.e7
		nx, ny, nz := UpdateMomentumHigueraCary(ux, uy, uz,
			0, 0, 0, 0, 0, 0, q, m, dt)
		assert.Equal(t, ux, nx)
		assert.Equal(t, uy, ny)
		assert.Equal(t, uz, nz)
	}
	// Pure electric field from rest: exactly (q/m)*E*dt
	{
		ez := 1.e9
		nx, ny, nz := UpdateMomentumHigueraCary(0, 0, 0,
			0, 0, ez, 0, 0, 0, q, m, dt)
		assert.Equal(t, 0.0, nx)
		assert.Equal(t, 0.0, ny)
		assert.InDelta(t, q*ez*dt/m, nz, math.Abs(nz)*1.e-14)
	}
	// Pure magnetic field rotates without changing the magnitude
	{
		var (
			ux, uy, uz = 2.e7, 0.0, 1.e7
			u0         = math.Sqrt(ux*ux + uy*uy + uz*uz)
			bz         = 5.0 // Tesla
		)
		for step := 0; step < 100; step++ {
			ux, uy, uz = UpdateMomentumHigueraCary(ux, uy, uz,
				0, 0, 0, 0, 0, bz, q, m, dt)
		}
		u1 := math.Sqrt(ux*ux + uy*uy + uz*uz)
		assert.InDelta(t, u0, u1, u0*1.e-12)
		// and it did rotate
		assert.True(t, math.Abs(uy) > 0)
		// the parallel component is untouched
		assert.InDelta(t, 1.e7, uz, 1.e7*1.e-12)
	}
	// E x B drift: crossed fields at the drift velocity leave the
	// momentum stationary on average; start from the drift itself
	{
		var (
			ey    = 1.e6
			bx    = 0.05
			vd    = -ey / bx // E x B / B^2, along -z
			gamma = 1 / math.Sqrt(1-vd*vd/(Clight*Clight))
			uz    = gamma * vd
			ux    = 0.0
			uy    = 0.0
		)
		nx, ny, nz := UpdateMomentumHigueraCary(ux, uy, uz,
			0, ey, 0, bx, 0, 0, q, m, dt)
		assert.InDelta(t, uz, nz, math.Abs(uz)*1.e-9)
		assert.InDelta(t, 0.0, nx, 1.0)
		assert.InDelta(t, 0.0, ny, math.Abs(uz)*1.e-9)
	}
}
