package types

import "time"

// Enumeration values offered by the dashboard forms. The dropdowns are
// closed sets; free text is only accepted for names, contact details
// and payment details.

// Categories lists the product categories.
func Categories() []string {
	return []string{"T-Shirt", "Pants", "Shoes", "Watches", "Accessories", "Electronics", "Sports"}
}

// GSTOptions lists the selectable GST rates.
func GSTOptions() []string {
	return []string{"0%", "5%", "12%", "18%", "28%"}
}

// Conditions lists the product condition grades.
func Conditions() []string {
	return []string{"New", "Good", "Fair", "Refurbished", "Used"}
}

// Roles lists the team member roles.
func Roles() []string {
	return []string{"Admin", "Manager", "Employee", "Intern", "Contractor"}
}

// IFSCCodes lists the bank branch codes offered in the withdrawal form.
func IFSCCodes() []string {
	return []string{
		"SBIN0000001", "HDFC0000001", "ICIC0000001", "AXIS0000001", "PUNB0000001",
		"CNRB0000001", "UBIN0000001", "IOBA0000001", "BKID0000001", "CBIN0000001",
		"ALLA0000001", "VIJB0000001", "INDB0000001", "MAHB0000001", "TMBL0000001",
	}
}

// SampleProducts is the dataset seeded on first load when no products
// have ever been saved. The seed keeps its original fixed ids so a
// fresh install is reproducible.
func SampleProducts() []Product {
	return []Product{
		{ID: "1", Name: "Cotton T-Shirt", Category: "T-Shirt", Stock: 150, Price: 599, GST: "18%", Condition: "New"},
		{ID: "2", Name: "Polo T-Shirt", Category: "T-Shirt", Stock: 120, Price: 799, GST: "18%", Condition: "New"},
		{ID: "3", Name: "Denim Jeans", Category: "Pants", Stock: 80, Price: 1299, GST: "18%", Condition: "New"},
		{ID: "4", Name: "Cargo Pants", Category: "Pants", Stock: 60, Price: 1599, GST: "18%", Condition: "New"},
		{ID: "5", Name: "Running Shoes", Category: "Shoes", Stock: 45, Price: 2499, GST: "18%", Condition: "New"},
		{ID: "6", Name: "Casual Sneakers", Category: "Shoes", Stock: 35, Price: 1899, GST: "18%", Condition: "New"},
		{ID: "7", Name: "Smart Watch", Category: "Watches", Stock: 25, Price: 4999, GST: "18%", Condition: "New"},
		{ID: "8", Name: "Analog Watch", Category: "Watches", Stock: 40, Price: 2299, GST: "18%", Condition: "New"},
		{ID: "9", Name: "Leather Belt", Category: "Accessories", Stock: 70, Price: 899, GST: "18%", Condition: "New"},
		{ID: "10", Name: "Sunglasses", Category: "Accessories", Stock: 55, Price: 1199, GST: "18%", Condition: "New"},
	}
}

// SampleTeamMembers is the directory seeded on first load.
func SampleTeamMembers() []TeamMember {
	return []TeamMember{
		{ID: "1", Name: "John Doe", Email: "john.doe@shippy.com", Phone: "+91 9876543210", Role: "Admin", JoinDate: "2024-01-15"},
		{ID: "2", Name: "Jane Smith", Email: "jane.smith@shippy.com", Phone: "+91 9876543211", Role: "Manager", JoinDate: "2024-02-20"},
		{ID: "3", Name: "Mike Johnson", Email: "mike.johnson@shippy.com", Phone: "+91 9876543212", Role: "Employee", JoinDate: "2024-03-10"},
	}
}

// DefaultSalaryState is the singleton seeded when no salary record has
// ever been saved. LastUpdate is stamped with the supplied wall-clock
// date.
func DefaultSalaryState(now time.Time) SalaryState {
	return SalaryState{
		CurrentSalary:    45000,
		NextSalaryDate:   "2025-08-25",
		NextSalaryAmount: 3500,
		TotalEarnings:    170000,
		LastUpdate:       now.Format(DateOnly),
	}
}

// SalaryHistoryEntry is one row of the static payout history shown on
// the salary tab. The history is display data only and never persisted.
type SalaryHistoryEntry struct {
	Month  string
	Amount float64
	Status string
	Date   string
}

// SalaryHistory returns the fixed payout history.
func SalaryHistory() []SalaryHistoryEntry {
	return []SalaryHistoryEntry{
		{Month: "July 2025", Amount: 3500, Status: "Paid", Date: "2025-07-25"},
		{Month: "June 2025", Amount: 3500, Status: "Paid", Date: "2025-06-25"},
		{Month: "May 2025", Amount: 3500, Status: "Paid", Date: "2025-05-25"},
		{Month: "April 2025", Amount: 3500, Status: "Paid", Date: "2025-04-25"},
	}
}
