package demo

import (
	"io"

	"github.com/Pure-Company/funcdemo"
)

// Interfaces builds equipment through suppliers and prints each one. Closure
// relies on the default existence check, ExistingManHole overrides it.
func Interfaces(w io.Writer) error {
	suppliers := []funcdemo.SupplierFunc[funcdemo.Equipment]{
		func() funcdemo.Equipment { return funcdemo.Closure{} },
		func() funcdemo.Equipment { return funcdemo.ExistingManHole{} },
		func() funcdemo.Equipment {
			return funcdemo.EquipmentFunc(func() string { return "Valve" })
		},
	}

	equipment := make([]funcdemo.Equipment, 0, len(suppliers))
	for _, s := range suppliers {
		equipment = append(equipment, funcdemo.CreateEquipment(s))
	}
	for _, e := range equipment {
		if err := funcdemo.Print(w, e); err != nil {
			return err
		}
	}
	return nil
}
