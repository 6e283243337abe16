package views

// Method is the payment category shown to the renderer
type Method string

const (
	Card  Method = "Card"
	Cash  Method = "Cash"
	Other Method = "Other"
)

// Methods is the fixed output order of the payment view
var Methods = [...]Method{Card, Cash, Other}

// Index returns the position of m in Methods
func (m Method) Index() int {
	switch m {
	case Card:
		return 0
	case Cash:
		return 1
	default:
		return 2
	}
}

// MethodForCode maps a TLC payment_type code to its category.
// 1 is credit card, 2 is cash; every other code, including a missing one, is Other.
func MethodForCode(code int64, valid bool) Method {
	if !valid {
		return Other
	}
	switch code {
	case 1:
		return Card
	case 2:
		return Cash
	default:
		return Other
	}
}
