package source

import "sweetbliss/internal/domain"

// demoSweets mirrors the seed catalog of the store. Served verbatim when the
// upstream is unreachable.
var demoSweets = []domain.Item{
	{ID: 1, Name: "Kaju Katli", Category: domain.Category{ID: 1, Name: "Dry Sweet", Description: "Dry sweets and fudges"}, Stock: 20, Price: 600, Description: "Delicious cashew fudge"},
	{ID: 2, Name: "Rasgulla", Category: domain.Category{ID: 2, Name: "Bengali Sweet", Description: "Traditional Bengali sweets"}, Stock: 45, Price: 350, Description: "Soft spongy balls in syrup"},
	{ID: 3, Name: "Laddu", Category: domain.Category{ID: 3, Name: "Traditional", Description: "Classic Indian sweets"}, Stock: 8, Price: 250, Description: "Round sweet balls"},
	{ID: 4, Name: "Gulab Jamun", Category: domain.Category{ID: 5, Name: "Syrup-based", Description: "Sweets in syrup"}, Stock: 35, Price: 300, Description: "Fried milk solids in syrup"},
	{ID: 5, Name: "Barfi", Category: domain.Category{ID: 4, Name: "Milk Sweet", Description: "Milk-based sweets"}, Stock: 15, Price: 400, Description: "Milk-based fudge"},
	{ID: 6, Name: "Jalebi", Category: domain.Category{ID: 5, Name: "Syrup-based", Description: "Sweets in syrup"}, Stock: 5, Price: 200, Description: "Spiral sweet in syrup"},
	{ID: 7, Name: "Kheer", Category: domain.Category{ID: 4, Name: "Milk Sweet", Description: "Milk-based sweets"}, Stock: 12, Price: 280, Description: "Rice pudding"},
	{ID: 8, Name: "Halwa", Category: domain.Category{ID: 3, Name: "Traditional", Description: "Classic Indian sweets"}, Stock: 22, Price: 350, Description: "Semolina pudding"},
}
