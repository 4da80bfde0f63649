package routes

import (
	"github.com/HenryDP/UnaAventuraMasCR/services"
	"github.com/HenryDP/UnaAventuraMasCR/storage"
	"github.com/HenryDP/UnaAventuraMasCR/utils"
	"github.com/kataras/iris/v12"
)

// ListTours serves the catalog. An empty or unavailable collection falls
// back to the seeded defaults so the site always has something to show.
func ListTours(ctx iris.Context) {
	tours := storage.GetAllTours()
	if len(tours) == 0 {
		tours = storage.DefaultTours()
	}
	ctx.JSON(iris.Map{"data": tours})
}

type DescribeTourInput struct {
	Title    string `json:"title" validate:"required,max=200"`
	Keywords string `json:"keywords" validate:"max=500"`
}

// AdminDescribeTour generates a multilingual description draft for the tour
// editor. The result is only stored when the admin saves the tour.
func AdminDescribeTour(ctx iris.Context) {
	var input DescribeTourInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	description, err := services.GenerateTourDescription(input.Title, input.Keywords)
	if err != nil {
		utils.CreateError(iris.StatusBadGateway, "Generator Error", err.Error(), ctx)
		return
	}
	ctx.JSON(iris.Map{"data": description})
}
