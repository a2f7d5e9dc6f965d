package booking

type Status string

const (
	StatusEditing    Status = "editing"
	StatusSubmitting Status = "submitting"
	StatusConfirmed  Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusEditing, StatusSubmitting, StatusConfirmed:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PayNow      PaymentMethod = "payNow"
	PayInPerson PaymentMethod = "payInPerson"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PayNow, PayInPerson:
		return true
	default:
		return false
	}
}

type GuestCategory string

const (
	CategoryAdults   GuestCategory = "adults"
	CategoryChildren GuestCategory = "children"
	CategorySeniors  GuestCategory = "seniors"
)

func (c GuestCategory) IsValid() bool {
	switch c {
	case CategoryAdults, CategoryChildren, CategorySeniors:
		return true
	default:
		return false
	}
}

type Direction string

const (
	Increment Direction = "increment"
	Decrement Direction = "decrement"
)

func (d Direction) IsValid() bool {
	return d == Increment || d == Decrement
}

type AddOn string

const (
	AddOnTransfer AddOn = "transfer"
	AddOnKayak    AddOn = "kayak"
	AddOnFerry    AddOn = "ferry"
	AddOnExtraDay AddOn = "extraDay"
)

func (a AddOn) IsValid() bool {
	switch a {
	case AddOnTransfer, AddOnKayak, AddOnFerry, AddOnExtraDay:
		return true
	default:
		return false
	}
}
