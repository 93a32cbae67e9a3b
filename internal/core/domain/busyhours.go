package domain

// BusyHour is one row of the canteen traffic chart.
type BusyHour struct {
	Hour       string
	Orders     int
	Percentage int
	Status     string
}

func SeedBusyHours() []BusyHour {
	return []BusyHour{
		{Hour: "11:00 AM", Orders: 45, Percentage: 70, Status: "Moderate"},
		{Hour: "12:00 PM", Orders: 78, Percentage: 100, Status: "Very Busy"},
		{Hour: "01:00 PM", Orders: 62, Percentage: 85, Status: "Busy"},
		{Hour: "02:00 PM", Orders: 34, Percentage: 50, Status: "Free"},
		{Hour: "03:00 PM", Orders: 28, Percentage: 40, Status: "Free"},
		{Hour: "04:00 PM", Orders: 15, Percentage: 25, Status: "Very Free"},
	}
}
