package directory

import (
	"dompet-gateway/src/models"
)

// Directory is the static registry of partner institutions, seeded once at
// process start.
type Directory struct {
	byID  map[string]models.Institution
	order []string
}

func Seed() *Directory {
	institutions := []models.Institution{
		{ID: "ins_bca", DisplayName: "Bank Central Asia", BrandColor: "#0060af"},
		{ID: "ins_mandiri", DisplayName: "Bank Mandiri", BrandColor: "#003d79"},
		{ID: "ins_gopay", DisplayName: "GoPay", BrandColor: "#00aed6"},
		{ID: "ins_ovo", DisplayName: "OVO", BrandColor: "#4c3494"},
		{ID: "ins_bibit", DisplayName: "Bibit", BrandColor: "#00ab6b"},
		{ID: "ins_jenius", DisplayName: "Jenius", BrandColor: "#00bdcd"},
	}

	d := &Directory{byID: make(map[string]models.Institution, len(institutions))}
	for _, ins := range institutions {
		d.byID[ins.ID] = ins
		d.order = append(d.order, ins.ID)
	}
	return d
}

func (d *Directory) List() []models.Institution {
	out := make([]models.Institution, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.byID[id])
	}
	return out
}

func (d *Directory) Get(id string) (models.Institution, bool) {
	ins, ok := d.byID[id]
	return ins, ok
}
