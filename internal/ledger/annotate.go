package ledger

import (
	"github.com/extrato-dev/extrato/internal/model"
	"github.com/extrato-dev/extrato/internal/textnorm"
)

// Annotate returns a copy of l with Side filled in: from the source
// side-column flag when one exists, otherwise from the sign of the value.
// Balance and emphasis are left untouched.
func Annotate(l model.Ledger) model.Ledger {
	out := append(model.Ledger(nil), l...)
	for i := range out {
		r := &out[i]
		if r.OpeningBalance {
			continue
		}
		if s := sideFromFlag(r.RawSide); s != "" {
			r.Side = s
			continue
		}
		if r.Value.Valid {
			if r.Value.Decimal.IsNegative() {
				r.Side = model.SideDebit
			} else {
				r.Side = model.SideCredit
			}
		}
	}
	return out
}

// sideFromFlag maps source flags like "C", "D", "Crédito" to a Side.
func sideFromFlag(raw string) model.Side {
	switch textnorm.Normalize(raw) {
	case "c", "cr", "cred", "credito":
		return model.SideCredit
	case "d", "db", "deb", "debito":
		return model.SideDebit
	}
	return ""
}
