package survey

import "fmt"

// Quantity names accepted on the command line and in config files.
var QuantityNames = []string{"u", "potential", "gz", "gmag", "|g|", "tzz"}

func ValidQuantity(name string) bool {
	for _, q := range QuantityNames {
		if q == name {
			return true
		}
	}
	return false
}

// Values extracts the named scalar quantity from a result, one value per
// observation point.
func (r *Result) Values(name string) ([]float64, error) {
	switch name {
	case "u", "potential":
		return r.Potential, nil
	case "gz":
		return r.VerticalField(), nil
	case "gmag", "|g|":
		return r.FieldMagnitudes(), nil
	case "tzz":
		out := make([]float64, len(r.Gradient))
		for i, t := range r.Gradient {
			out[i] = t[2][2]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown quantity: %s", name)
	}
}
