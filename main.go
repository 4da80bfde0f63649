package main

import (
	"context"
	"os"

	"github.com/HenryDP/UnaAventuraMasCR/routes"
	"github.com/HenryDP/UnaAventuraMasCR/storage"
	"github.com/HenryDP/UnaAventuraMasCR/utils"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeRedis()
	go storage.ListenRedis(context.Background())

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the site and the dashboard
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	site := app.Party("/api")
	{
		site.Get("/site", routes.GetSite)
		site.Get("/tours", routes.ListTours)
		site.Get("/reviews", routes.ListReviews)
		site.Post("/reviews", routes.CreateReview)
		site.Post("/checkout", routes.Checkout)
	}

	user := app.Party("/api/user")
	{
		user.Post("/register", routes.Register)
		user.Post("/login", routes.Login)
	}

	app.Party("/api/admin").Post("/login", routes.AdminLogin)

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Post("/logout", routes.AdminLogout)
		admin.Put("/state", routes.AdminSaveState)
		admin.Post("/deploy", routes.AdminDeploy)
		admin.Post("/upload", routes.UploadImage)
		admin.Post("/tours/describe", routes.AdminDescribeTour)
		admin.Get("/tours/{id}/bookings", routes.AdminListTourBookings)
		admin.Get("/tours/{id}/bookings.csv", routes.AdminExportTourBookingsCSV)
		admin.Post("/export", routes.AdminCreateExport)
		admin.Get("/export/{id}", routes.AdminGetExport)
		admin.Get("/users", routes.AdminListUsers)

		team := admin.Party("/team", utils.SuperAdminOnlyMiddleware)
		{
			team.Get("/", routes.AdminListTeam)
			team.Put("/", routes.AdminSaveTeam)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	app.Listen(":" + port)
}
