package routes

import (
	"strings"

	"github.com/HenryDP/UnaAventuraMasCR/models"
	"github.com/HenryDP/UnaAventuraMasCR/storage"
	"github.com/HenryDP/UnaAventuraMasCR/utils"
	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
)

type RegisterUserInput struct {
	Name        string `json:"name" validate:"required,max=256"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,max=256"`
	Nationality string `json:"nationality" validate:"max=64"`
	PhoneNumber string `json:"phoneNumber" validate:"max=32"`
}

type LoginUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates (or overwrites) the account for an email address and
// reports the outcome inline so the form can render it.
func Register(ctx iris.Context) {
	var userInput RegisterUserInput
	if err := ctx.ReadJSON(&userInput); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	hashedPassword, hashErr := hashAndSaltPassword(userInput.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	newUser := models.User{
		Email:       strings.ToLower(userInput.Email),
		Password:    hashedPassword,
		Name:        userInput.Name,
		Nationality: userInput.Nationality,
		PhoneNumber: userInput.PhoneNumber,
	}

	result := storage.CreateUser(newUser)
	if !result.Success {
		ctx.JSON(iris.Map{"success": false, "message": result.Message})
		return
	}

	returnUserSession(newUser, ctx)
}

// Login checks the password and answers with a generic message on any
// mismatch; no lockout, the account record is never mutated.
func Login(ctx iris.Context) {
	var userInput LoginUserInput
	if err := ctx.ReadJSON(&userInput); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	errorMsg := "Credenciales incorrectas."
	existingUser, found := storage.FindUserByEmail(userInput.Email)
	if !found {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	passwordErr := bcrypt.CompareHashAndPassword([]byte(existingUser.Password), []byte(userInput.Password))
	if passwordErr != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	returnUserSession(*existingUser, ctx)
}

func hashAndSaltPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func returnUserSession(user models.User, ctx iris.Context) {
	token, err := utils.CreateSessionToken(user.Email, user.Name, "USER")
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(iris.Map{
		"success":     true,
		"message":     "OK",
		"user":        user,
		"accessToken": token,
	})
}
