package routes

import (
	"crypto/subtle"
	"log"
	"os"
	"sync"

	"github.com/HenryDP/UnaAventuraMasCR/models"
	"github.com/HenryDP/UnaAventuraMasCR/storage"
	"github.com/HenryDP/UnaAventuraMasCR/utils"
	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"golang.org/x/crypto/bcrypt"
)

// maxTeamSize caps the editor team managed from the dashboard.
const maxTeamSize = 3

type AdminLoginInput struct {
	Password string `json:"password" validate:"required"`
}

// AdminLogin grants a SUPER_ADMIN session for the configured passphrase or
// an EDITOR session for a matching per-editor access code. Every outcome is
// audited; mismatches get one generic message.
func AdminLogin(ctx iris.Context) {
	var input AdminLoginInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	passphrase := os.Getenv("ADMIN_PASSPHRASE")
	if passphrase != "" && subtle.ConstantTimeCompare([]byte(input.Password), []byte(passphrase)) == 1 {
		returnAdminSession(ctx, "super", "Super Admin", models.RoleSuperAdmin)
		return
	}

	for _, admin := range storage.GetAllAdmins() {
		if bcrypt.CompareHashAndPassword([]byte(admin.AccessCodeHash), []byte(input.Password)) == nil {
			returnAdminSession(ctx, admin.ID, admin.Name, models.RoleEditor)
			return
		}
	}

	utils.Audit(ctx, "admin.login_failed", "session", "", nil, nil)
	utils.CreateError(iris.StatusUnauthorized, "Credentials Error", "Credenciales incorrectas.", ctx)
}

func returnAdminSession(ctx iris.Context, id, name, role string) {
	token, err := utils.CreateSessionToken(id, name, role)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "admin.login", "session", id, nil, iris.Map{"role": role})
	ctx.JSON(iris.Map{"accessToken": token, "role": role, "name": name})
}

// AdminLogout revokes the presented session token.
func AdminLogout(ctx iris.Context) {
	if token := jwt.GetVerifiedToken(ctx); token != nil {
		utils.RevokeSessionToken(string(token.Token))
	}
	utils.Audit(ctx, "admin.logout", "session", "", nil, nil)
	ctx.JSON(iris.Map{"success": true})
}

// SiteState is the complete dashboard-editable state, saved as one batch.
type SiteState struct {
	Tours          []models.Tour        `json:"tours"`
	PaymentConfig  models.PaymentConfig `json:"paymentConfig"`
	AboutData      models.AboutData     `json:"aboutData"`
	FooterConfig   models.FooterConfig  `json:"footerConfig"`
	GeneralConfig  models.GeneralConfig `json:"generalConfig"`
	CarouselImages []string             `json:"carouselImages"`
	Reviews        []models.Review      `json:"reviews"`
}

// AdminSaveState fans out the whole site state as independent writes,
// waits for every one to settle, and stamps the sync timestamp regardless
// of individual outcomes. One failing write never rolls back the others.
func AdminSaveState(ctx iris.Context) {
	var state SiteState
	if err := ctx.ReadJSON(&state); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	failures := settleAll(map[string]func() error{
		"tours":    func() error { return storage.SaveAllTours(state.Tours) },
		"payment":  func() error { return storage.SetPaymentConfig(state.PaymentConfig) },
		"about":    func() error { return storage.SetAboutData(state.AboutData) },
		"footer":   func() error { return storage.SetFooterConfig(state.FooterConfig) },
		"general":  func() error { return storage.SetGeneralConfig(state.GeneralConfig) },
		"carousel": func() error { return storage.SetCarousel(state.CarouselImages) },
		"reviews":  func() error { return storage.SaveAllReviews(state.Reviews) },
	})

	lastSync := storage.SyncAll()
	utils.Audit(ctx, "site.save_state", "site", "", nil, iris.Map{"failed": failures})
	ctx.JSON(iris.Map{"lastSync": lastSync, "failed": failures})
}

// settleAll runs every operation concurrently and waits for all of them,
// success or failure. Returns the names of the operations that failed.
func settleAll(ops map[string]func() error) []string {
	var wg sync.WaitGroup
	var mu sync.Mutex
	failures := []string{}
	for name, op := range ops {
		wg.Add(1)
		go func(name string, op func() error) {
			defer wg.Done()
			if err := op(); err != nil {
				log.Printf("state write %s failed: %v", name, err)
				mu.Lock()
				failures = append(failures, name)
				mu.Unlock()
			}
		}(name, op)
	}
	wg.Wait()
	return failures
}

// AdminDeploy stamps a publish timestamp and broadcasts the deploy signal.
func AdminDeploy(ctx iris.Context) {
	publishedAt := storage.Deploy()
	utils.Audit(ctx, "site.deploy", "site", "", nil, iris.Map{"publishedAt": publishedAt})
	ctx.JSON(iris.Map{"publishedAt": publishedAt})
}

// AdminListTeam returns the editor seats (access codes stay hashed).
func AdminListTeam(ctx iris.Context) {
	ctx.JSON(iris.Map{"data": storage.GetAllAdmins()})
}

type TeamMemberInput struct {
	ID         string `json:"id"`
	Name       string `json:"name" validate:"required,max=128"`
	AccessCode string `json:"accessCode" validate:"omitempty,min=6,max=128"`
}

// AdminSaveTeam replaces the whole editor team. Capacity is enforced here,
// not in storage. New members need an access code; existing ones keep their
// hash when the code field is left empty.
func AdminSaveTeam(ctx iris.Context) {
	var inputs []TeamMemberInput
	if err := ctx.ReadJSON(&inputs); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	if len(inputs) > maxTeamSize {
		utils.CreateError(iris.StatusBadRequest, "Team Limit", "El equipo admite un máximo de 3 accesos.", ctx)
		return
	}

	existing := map[string]models.AdminUser{}
	for _, admin := range storage.GetAllAdmins() {
		existing[admin.ID] = admin
	}

	team := make([]models.AdminUser, 0, len(inputs))
	for _, input := range inputs {
		member := models.AdminUser{ID: input.ID, Name: input.Name, Role: models.RoleEditor}
		if member.ID == "" {
			member.ID = uuid.NewString()
		}
		switch {
		case input.AccessCode != "":
			hash, err := bcrypt.GenerateFromPassword([]byte(input.AccessCode), bcrypt.DefaultCost)
			if err != nil {
				utils.CreateInternalServerError(ctx)
				return
			}
			member.AccessCodeHash = string(hash)
		case existing[member.ID].AccessCodeHash != "":
			member.AccessCodeHash = existing[member.ID].AccessCodeHash
		default:
			utils.CreateError(iris.StatusBadRequest, "Access Code Required", "Cada nuevo acceso necesita un código.", ctx)
			return
		}
		team = append(team, member)
	}

	if err := storage.SaveAllAdmins(team); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "team.save", "admins", "", nil, iris.Map{"count": len(team)})
	ctx.JSON(iris.Map{"data": team})
}

// AdminListUsers lists registered site users for the dashboard.
func AdminListUsers(ctx iris.Context) {
	ctx.JSON(iris.Map{"data": storage.GetAllUsers()})
}
