package routes

import (
	"fmt"
	"time"

	"github.com/HenryDP/UnaAventuraMasCR/models"
	"github.com/HenryDP/UnaAventuraMasCR/storage"
	"github.com/HenryDP/UnaAventuraMasCR/utils"
	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
)

type CreateReviewInput struct {
	UserName string `json:"userName" validate:"required,max=128"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"required,max=1000"`
	Location string `json:"location" validate:"max=128"`
}

// ListReviews returns every testimonial, newest first. Ordering is a
// presentation choice; storage makes no guarantee.
func ListReviews(ctx iris.Context) {
	reviews := storage.GetAllReviews()
	for i, j := 0, len(reviews)-1; i < j; i, j = i+1, j-1 {
		reviews[i], reviews[j] = reviews[j], reviews[i]
	}
	ctx.JSON(iris.Map{"data": reviews})
}

// CreateReview appends one testimonial with a locale-formatted date string.
func CreateReview(ctx iris.Context) {
	var input CreateReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	review := models.Review{
		ID:       uuid.NewString(),
		UserName: input.UserName,
		Rating:   input.Rating,
		Comment:  input.Comment,
		Date:     formatSpanishDate(time.Now()),
		Location: input.Location,
	}

	if err := storage.AddReview(review); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(iris.Map{"success": true, "data": review})
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// formatSpanishDate renders "02 de enero de 2026", the display format the
// site uses for review dates.
func formatSpanishDate(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}
