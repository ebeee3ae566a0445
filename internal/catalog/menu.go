package catalog

import "github.com/mealbox/storefront-backend/internal/models"

var menuRotations = [][]models.MenuItem{
	{
		{ID: "r1-salmon", Name: "Miso Glazed Salmon", Description: "Sesame greens, jasmine rice", Category: models.MenuCategoryMain, Calories: 620, Tags: []string{"gluten-free"}},
		{ID: "r1-chicken", Name: "Lemon Herb Chicken", Description: "Roasted potatoes, charred broccolini", Category: models.MenuCategoryMain, Calories: 580},
		{ID: "r1-bowl", Name: "Harissa Chickpea Bowl", Description: "Freekeh, cucumber, tahini", Category: models.MenuCategoryVegetarian, Calories: 540, Tags: []string{"vegan"}},
		{ID: "r1-oats", Name: "Overnight Oats", Description: "Berries, chia, almond butter", Category: models.MenuCategoryBreakfast, Calories: 380, Tags: []string{"vegan"}},
		{ID: "r1-tart", Name: "Olive Oil Citrus Cake", Description: "Candied orange", Category: models.MenuCategoryDessert, Calories: 310},
	},
	{
		{ID: "r2-steak", Name: "Chimichurri Flank Steak", Description: "Sweet potato mash, green beans", Category: models.MenuCategoryMain, Calories: 690, Tags: []string{"gluten-free"}},
		{ID: "r2-pasta", Name: "Turkey Bolognese", Description: "Rigatoni, parmesan, basil", Category: models.MenuCategoryMain, Calories: 710},
		{ID: "r2-curry", Name: "Coconut Lentil Curry", Description: "Brown rice, cilantro chutney", Category: models.MenuCategoryVegetarian, Calories: 560, Tags: []string{"vegan", "gluten-free"}},
		{ID: "r2-frittata", Name: "Spinach Feta Frittata", Description: "Roasted tomatoes", Category: models.MenuCategoryBreakfast, Calories: 340},
		{ID: "r2-pudding", Name: "Dark Chocolate Pudding", Description: "Sea salt, whipped cream", Category: models.MenuCategoryDessert, Calories: 290},
	},
	{
		{ID: "r3-cod", Name: "Blackened Cod Tacos", Description: "Cabbage slaw, lime crema", Category: models.MenuCategoryMain, Calories: 600},
		{ID: "r3-pork", Name: "Gochujang Pork Bowl", Description: "Kimchi, soft egg, rice", Category: models.MenuCategoryMain, Calories: 720},
		{ID: "r3-risotto", Name: "Mushroom Barley Risotto", Description: "Thyme, pecorino", Category: models.MenuCategoryVegetarian, Calories: 530},
		{ID: "r3-parfait", Name: "Greek Yogurt Parfait", Description: "Granola, honey, stone fruit", Category: models.MenuCategoryBreakfast, Calories: 360},
		{ID: "r3-crisp", Name: "Apple Oat Crisp", Description: "Cinnamon, vanilla yogurt", Category: models.MenuCategoryDessert, Calories: 300},
	},
}
