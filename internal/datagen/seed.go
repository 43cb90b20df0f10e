package datagen

import "github.com/carwise/carwise/internal/inventory"

// seedListings is the curated base of used-car ads, one entry per marketplace
// ad. Data, not logic; extend freely.
var seedListings = []inventory.Listing{
	// Budget-friendly options
	{Brand: "Nissan", Model: "Versa", Year: 2015, Price: 8500, Fuel: "Petrol", Type: "Sedan", Reliability: "Medium", Insurance: "Low", Maintenance: "Medium", DriverTypes: "Student;Budget", Color: "White", MPGCity: 31, MPGHighway: 40, SafetyRating: 4, CargoSpace: 15},
	{Brand: "Hyundai", Model: "Accent", Year: 2016, Price: 9200, Fuel: "Petrol", Type: "Sedan", Reliability: "Medium", Insurance: "Low", Maintenance: "Low", DriverTypes: "Student;Budget", Color: "Red", MPGCity: 28, MPGHighway: 38, SafetyRating: 4, CargoSpace: 13},
	{Brand: "Kia", Model: "Rio", Year: 2017, Price: 10500, Fuel: "Petrol", Type: "Hatchback", Reliability: "Medium", Insurance: "Low", Maintenance: "Low", DriverTypes: "Student;Budget", Color: "Blue", MPGCity: 32, MPGHighway: 40, SafetyRating: 4, CargoSpace: 17},
	{Brand: "Hyundai", Model: "Elantra", Year: 2016, Price: 10800, Fuel: "Petrol", Type: "Sedan", Reliability: "Medium", Insurance: "Low", Maintenance: "Low", DriverTypes: "Student;Commuter", Color: "Gray", MPGCity: 29, MPGHighway: 38, SafetyRating: 4, CargoSpace: 14},

	// High mileage deals
	{Brand: "Toyota", Model: "Camry", Year: 2012, Price: 11000, Fuel: "Petrol", Type: "Sedan", Reliability: "High", Insurance: "Medium", Maintenance: "Low", DriverTypes: "Family;Budget", Color: "Silver", MPGCity: 25, MPGHighway: 35, SafetyRating: 4, CargoSpace: 15},
	{Brand: "Honda", Model: "Accord", Year: 2013, Price: 12500, Fuel: "Petrol", Type: "Sedan", Reliability: "High", Insurance: "Medium", Maintenance: "Low", DriverTypes: "Family;Commuter", Color: "Black", MPGCity: 27, MPGHighway: 36, SafetyRating: 5, CargoSpace: 16},

	// Low mileage premium finds
	{Brand: "Lexus", Model: "ES", Year: 2018, Price: 28000, Fuel: "Petrol", Type: "Sedan", Reliability: "High", Insurance: "High", Maintenance: "Medium", DriverTypes: "Luxury;Family", Color: "White", MPGCity: 22, MPGHighway: 33, SafetyRating: 5, CargoSpace: 16},
	{Brand: "Acura", Model: "TLX", Year: 2019, Price: 24000, Fuel: "Petrol", Type: "Sedan", Reliability: "High", Insurance: "High", Maintenance: "Medium", DriverTypes: "Enthusiast;Family", Color: "Gray", MPGCity: 23, MPGHighway: 33, SafetyRating: 5, CargoSpace: 14},

	// Compact city cars
	{Brand: "Honda", Model: "Fit", Year: 2018, Price: 13500, Fuel: "Petrol", Type: "Hatchback", Reliability: "High", Insurance: "Low", Maintenance: "Low", DriverTypes: "Student;Urban", Color: "Orange", MPGCity: 33, MPGHighway: 41, SafetyRating: 5, CargoSpace: 16},
	{Brand: "Toyota", Model: "Yaris", Year: 2019, Price: 14500, Fuel: "Petrol", Type: "Hatchback", Reliability: "High", Insurance: "Low", Maintenance: "Low", DriverTypes: "Student;Urban", Color: "Blue", MPGCity: 32, MPGHighway: 40, SafetyRating: 4, CargoSpace: 15},
	{Brand: "Mazda", Model: "3", Year: 2017, Price: 13800, Fuel: "Petrol", Type: "Hatchback", Reliability: "High", Insurance: "Low", Maintenance: "Low", DriverTypes: "Student;Commuter", Color: "Red", MPGCity: 28, MPGHighway: 37, SafetyRating: 5, CargoSpace: 20},

	// Family SUVs
	{Brand: "Ford", Model: "Escape", Year: 2017, Price: 16500, Fuel: "Petrol", Type: "SUV", Reliability: "Medium", Insurance: "Medium", Maintenance: "Medium", DriverTypes: "Family;Commuter", Color: "Red", MPGCity: 23, MPGHighway: 30, SafetyRating: 5, CargoSpace: 34},
	{Brand: "Chevrolet", Model: "Equinox", Year: 2018, Price: 18000, Fuel: "Petrol", Type: "SUV", Reliability: "Medium", Insurance: "Medium", Maintenance: "Medium", DriverTypes: "Family", Color: "White", MPGCity: 26, MPGHighway: 32, SafetyRating: 5, CargoSpace: 30},
	{Brand: "Honda", Model: "CR-V", Year: 2018, Price: 19500, Fuel: "Petrol", Type: "SUV", Reliability: "High", Insurance: "Medium", Maintenance: "Low", DriverTypes: "Family;Commuter", Color: "Silver", MPGCity: 28, MPGHighway: 34, SafetyRating: 5, CargoSpace: 39},
	{Brand: "Toyota", Model: "RAV4", Year: 2017, Price: 18800, Fuel: "Petrol", Type: "SUV", Reliability: "High", Insurance: "Medium", Maintenance: "Low", DriverTypes: "Family;Commuter", Color: "Blue", MPGCity: 23, MPGHighway: 30, SafetyRating: 5, CargoSpace: 38},
	{Brand: "Subaru", Model: "Outback", Year: 2016, Price: 17500, Fuel: "Petrol", Type: "SUV", Reliability: "High", Insurance: "Medium", Maintenance: "Medium", DriverTypes: "Family;Outdoor", Color: "Green", MPGCity: 25, MPGHighway: 32, SafetyRating: 5, CargoSpace: 36},

	// Electric and hybrid
	{Brand: "Nissan", Model: "Leaf", Year: 2017, Price: 15000, Fuel: "Electric", Type: "Hatchback", Reliability: "High", Insurance: "Medium", Maintenance: "Low", DriverTypes: "Eco;Urban", Color: "White", MPGCity: 124, MPGHighway: 99, SafetyRating: 5, CargoSpace: 24},
	{Brand: "Toyota", Model: "Prius Prime", Year: 2018, Price: 19500, Fuel: "Hybrid", Type: "Hatchback", Reliability: "High", Insurance: "Medium", Maintenance: "Low", DriverTypes: "Eco;Commuter", Color: "Silver", MPGCity: 54, MPGHighway: 50, SafetyRating: 5, CargoSpace: 19},
	{Brand: "Tesla", Model: "Model 3", Year: 2019, Price: 29500, Fuel: "Electric", Type: "Sedan", Reliability: "Medium", Insurance: "High", Maintenance: "Low", DriverTypes: "Eco;Enthusiast", Color: "Black", MPGCity: 138, MPGHighway: 126, SafetyRating: 5, CargoSpace: 15},

	// Luxury
	{Brand: "BMW", Model: "X3", Year: 2017, Price: 26000, Fuel: "Petrol", Type: "SUV", Reliability: "Medium", Insurance: "High", Maintenance: "High", DriverTypes: "Luxury;Family", Color: "Black", MPGCity: 23, MPGHighway: 30, SafetyRating: 5, CargoSpace: 28},
	{Brand: "Audi", Model: "Q5", Year: 2018, Price: 29000, Fuel: "Petrol", Type: "SUV", Reliability: "Medium", Insurance: "High", Maintenance: "High", DriverTypes: "Luxury;Family", Color: "Gray", MPGCity: 23, MPGHighway: 29, SafetyRating: 5, CargoSpace: 25},
	{Brand: "Volvo", Model: "XC60", Year: 2017, Price: 24500, Fuel: "Petrol", Type: "SUV", Reliability: "Medium", Insurance: "High", Maintenance: "High", DriverTypes: "Luxury;Family", Color: "White", MPGCity: 22, MPGHighway: 28, SafetyRating: 5, CargoSpace: 30},

	// Performance
	{Brand: "Ford", Model: "Mustang", Year: 2016, Price: 19500, Fuel: "Petrol", Type: "Coupe", Reliability: "Medium", Insurance: "High", Maintenance: "Medium", DriverTypes: "Enthusiast", Color: "Red", MPGCity: 21, MPGHighway: 31, SafetyRating: 4, CargoSpace: 13},
	{Brand: "Chevrolet", Model: "Camaro", Year: 2017, Price: 22000, Fuel: "Petrol", Type: "Coupe", Reliability: "Medium", Insurance: "High", Maintenance: "Medium", DriverTypes: "Enthusiast", Color: "Yellow", MPGCity: 20, MPGHighway: 30, SafetyRating: 4, CargoSpace: 9},

	// Trucks and vans
	{Brand: "Ford", Model: "F-150", Year: 2016, Price: 24000, Fuel: "Petrol", Type: "Truck", Reliability: "Medium", Insurance: "Medium", Maintenance: "Medium", DriverTypes: "Work;Family", Color: "Blue", MPGCity: 18, MPGHighway: 25, SafetyRating: 5, CargoSpace: 52},
	{Brand: "Chevrolet", Model: "Silverado", Year: 2017, Price: 26000, Fuel: "Petrol", Type: "Truck", Reliability: "Medium", Insurance: "Medium", Maintenance: "Medium", DriverTypes: "Work;Family", Color: "White", MPGCity: 16, MPGHighway: 23, SafetyRating: 4, CargoSpace: 53},
	{Brand: "Dodge", Model: "Grand Caravan", Year: 2016, Price: 14500, Fuel: "Petrol", Type: "Van", Reliability: "Medium", Insurance: "Medium", Maintenance: "Medium", DriverTypes: "Family", Color: "Silver", MPGCity: 17, MPGHighway: 25, SafetyRating: 4, CargoSpace: 140},

	// Older reliable cars
	{Brand: "Toyota", Model: "Corolla", Year: 2010, Price: 8000, Fuel: "Petrol", Type: "Sedan", Reliability: "High", Insurance: "Low", Maintenance: "Low", DriverTypes: "Student;Budget", Color: "Silver", MPGCity: 26, MPGHighway: 34, SafetyRating: 4, CargoSpace: 13},
	{Brand: "Honda", Model: "Civic", Year: 2011, Price: 9500, Fuel: "Petrol", Type: "Sedan", Reliability: "High", Insurance: "Low", Maintenance: "Low", DriverTypes: "Student;Budget", Color: "Blue", MPGCity: 28, MPGHighway: 36, SafetyRating: 5, CargoSpace: 12},
	{Brand: "Volkswagen", Model: "Golf", Year: 2014, Price: 11500, Fuel: "Petrol", Type: "Hatchback", Reliability: "Medium", Insurance: "Medium", Maintenance: "Medium", DriverTypes: "Commuter;Urban", Color: "Gray", MPGCity: 25, MPGHighway: 36, SafetyRating: 4, CargoSpace: 23},
}
