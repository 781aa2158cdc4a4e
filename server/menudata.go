package server

import "quality-fastfood/models"

// The menu is static: Quality Fast Food runs one Mumbai street-food kitchen.
// All prices in whole rupees.
var menuCategories = []models.MenuCategory{
	{
		Category: "Vada Pav",
		Items: []models.MenuItem{
			{ID: 1, Name: "Classic Vada Pav", Description: "Mumbai's favorite - crispy potato vada in soft pav with chutneys", Price: 25, Category: "Vada Pav", Image: "vada-pav.jpg", IsVeg: true, IsBestseller: true},
			{ID: 2, Name: "Cheese Vada Pav", Description: "Classic vada pav loaded with melted cheese", Price: 40, Category: "Vada Pav", Image: "cheese-vada-pav.jpg", IsVeg: true},
			{ID: 3, Name: "Schezwan Vada Pav", Description: "Spicy Schezwan sauce with crispy vada", Price: 35, Category: "Vada Pav", Image: "schezwan-vada-pav.jpg", IsVeg: true},
			{ID: 4, Name: "Masala Vada Pav", Description: "Extra masala and garlic chutney for spice lovers", Price: 30, Category: "Vada Pav", Image: "masala-vada-pav.jpg", IsVeg: true},
		},
	},
	{
		Category: "Pav Bhaji",
		Items: []models.MenuItem{
			{ID: 5, Name: "Classic Pav Bhaji", Description: "Buttery pav with spicy mashed vegetable bhaji", Price: 60, Category: "Pav Bhaji", Image: "pav-bhaji.jpg", IsVeg: true, IsBestseller: true},
			{ID: 6, Name: "Cheese Pav Bhaji", Description: "Pav bhaji topped with generous cheese", Price: 80, Category: "Pav Bhaji", Image: "cheese-pav-bhaji.jpg", IsVeg: true, IsBestseller: true},
			{ID: 7, Name: "Jain Pav Bhaji", Description: "No onion, no garlic pav bhaji for Jain customers", Price: 70, Category: "Pav Bhaji", Image: "jain-pav-bhaji.jpg", IsVeg: true},
			{ID: 8, Name: "Extra Butter Pav Bhaji", Description: "Double butter pav bhaji for butter lovers", Price: 75, Category: "Pav Bhaji", Image: "butter-pav-bhaji.jpg", IsVeg: true},
		},
	},
	{
		Category: "Sandwiches",
		Items: []models.MenuItem{
			{ID: 9, Name: "Veg Grilled Sandwich", Description: "Fresh vegetables with cheese, grilled to perfection", Price: 50, Category: "Sandwiches", Image: "veg-sandwich.jpg", IsVeg: true, IsBestseller: true},
			{ID: 10, Name: "Club Sandwich", Description: "Triple layer sandwich with veggies and sauces", Price: 70, Category: "Sandwiches", Image: "club-sandwich.jpg", IsVeg: true},
			{ID: 11, Name: "Paneer Tikka Sandwich", Description: "Grilled paneer tikka with mint chutney", Price: 80, Category: "Sandwiches", Image: "paneer-sandwich.jpg", IsVeg: true, IsBestseller: true},
			{ID: 12, Name: "Bombay Masala Sandwich", Description: "Classic Mumbai style masala sandwich", Price: 45, Category: "Sandwiches", Image: "bombay-sandwich.jpg", IsVeg: true},
		},
	},
	{
		Category: "Chinese",
		Items: []models.MenuItem{
			{ID: 13, Name: "Veg Manchurian", Description: "Crispy vegetable balls in spicy Manchurian sauce", Price: 90, Category: "Chinese", Image: "manchurian.jpg", IsVeg: true, IsBestseller: true},
			{ID: 14, Name: "Hakka Noodles", Description: "Stir-fried noodles with vegetables and sauces", Price: 70, Category: "Chinese", Image: "hakka-noodles.jpg", IsVeg: true, IsBestseller: true},
			{ID: 15, Name: "Schezwan Fried Rice", Description: "Spicy Schezwan rice with mixed vegetables", Price: 80, Category: "Chinese", Image: "schezwan-rice.jpg", IsVeg: true},
			{ID: 16, Name: "Chilli Paneer", Description: "Indo-Chinese style chilli paneer dry", Price: 120, Category: "Chinese", Image: "chilli-paneer.jpg", IsVeg: true, IsBestseller: true},
			{ID: 17, Name: "Spring Rolls", Description: "Crispy vegetable spring rolls (6 pieces)", Price: 60, Category: "Chinese", Image: "spring-rolls.jpg", IsVeg: true},
		},
	},
	{
		Category: "Beverages",
		Items: []models.MenuItem{
			{ID: 18, Name: "Masala Chai", Description: "Authentic Mumbai cutting chai with masala", Price: 15, Category: "Beverages", Image: "masala-chai.jpg", IsVeg: true, IsBestseller: true},
			{ID: 19, Name: "Cold Coffee", Description: "Refreshing cold coffee with ice cream", Price: 50, Category: "Beverages", Image: "cold-coffee.jpg", IsVeg: true, IsBestseller: true},
			{ID: 20, Name: "Fresh Lime Soda", Description: "Sweet or salted lime soda - perfect refreshment", Price: 30, Category: "Beverages", Image: "lime-soda.jpg", IsVeg: true},
			{ID: 21, Name: "Mango Lassi", Description: "Thick and creamy mango lassi", Price: 45, Category: "Beverages", Image: "mango-lassi.jpg", IsVeg: true},
			{ID: 22, Name: "Cold Drink", Description: "Chilled soft drinks (Coke, Pepsi, Sprite)", Price: 25, Category: "Beverages", Image: "cold-drink.jpg", IsVeg: true},
		},
	},
}

// Menu returns the full menu grouped by category.
func Menu() models.MenuResponse {
	return models.MenuResponse{Categories: menuCategories}
}

// ItemByID looks up a menu item. Returns nil when the id is unknown.
func ItemByID(id int64) *models.MenuItem {
	for _, cat := range menuCategories {
		for i := range cat.Items {
			if cat.Items[i].ID == id {
				item := cat.Items[i]
				return &item
			}
		}
	}
	return nil
}
