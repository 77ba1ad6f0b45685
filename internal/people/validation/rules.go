package validation

// Field limits. Lengths count characters, not bytes.
const (
	NameMax                 = 100
	CompanyNameMax          = 200
	JobTitleMax             = 100
	AddressMax              = 500
	TownMax                 = 100
	StateMax                = 50
	DescriptionMax          = 500
	PreferredGenderOtherMax = 50

	MinRooms = 0
	MaxRooms = 100

	MonthlyPaymentMax int64 = 1_000_000
	RateOfPayMax      int64 = 1_000_000_000
)
