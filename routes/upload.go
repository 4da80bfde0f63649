package routes

import (
	"github.com/HenryDP/UnaAventuraMasCR/services"
	"github.com/HenryDP/UnaAventuraMasCR/utils"
	"github.com/kataras/iris/v12"
)

type uploadInput struct {
	Data     string `json:"data" validate:"required"` // base64 data URL or raw base64
	MaxWidth int    `json:"maxWidth"`
	Quality  int    `json:"quality"`
	Format   string `json:"format"` // image/jpeg or image/png
}

// UploadImage downscales and re-encodes an uploaded image, returning the
// data URI the dashboard stores on the tour or config document.
func UploadImage(ctx iris.Context) {
	var in uploadInput
	if err := ctx.ReadJSON(&in); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	dataURI, err := services.ProcessImage(in.Data, in.MaxWidth, in.Quality, in.Format)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Invalid Image", err.Error(), ctx)
		return
	}
	ctx.JSON(iris.Map{"url": dataURI})
}
