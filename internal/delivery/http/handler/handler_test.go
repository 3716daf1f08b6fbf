package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"fruitarians-api/internal/config"
	domainUser "fruitarians-api/internal/domain/user"
	"fruitarians-api/internal/domain/user/mocks"
	"fruitarians-api/internal/infrastructure/database/postgres"
	"fruitarians-api/internal/infrastructure/database/postgres/models"
	"fruitarians-api/internal/middleware"
	"fruitarians-api/internal/usecase/article"
	"fruitarians-api/internal/usecase/user"
	"fruitarians-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const testPassword = "Rahasia123!"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.PasswordCost = 4
	os.Exit(m.Run())
}

type harness struct {
	t        *testing.T
	cfg      *config.Config
	db       *postgres.DB
	router   *gin.Engine
	users    domainUser.Repository
	uploader *mocks.MockUploader
	mailer   *mocks.MockMailer
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db := &postgres.DB{DB: gdb}
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "handler-test-secret", ExpiryHours: 1, ResetExpiryMinute: 15},
	}

	ctrl := gomock.NewController(t)
	h := &harness{
		t:        t,
		cfg:      cfg,
		db:       db,
		users:    postgres.NewUserRepository(db),
		uploader: mocks.NewMockUploader(ctrl),
		mailer:   mocks.NewMockMailer(ctrl),
	}

	userService := user.NewService(h.users, postgres.NewBuahRepository(db), h.uploader, h.mailer, cfg)
	articleService := article.NewService(postgres.NewArticleRepository(db))

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	NewAuthHandler(userService).RegisterRoutes(&router.RouterGroup)
	NewArticleHandler(articleService).RegisterRoutes(&router.RouterGroup)
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	NewUserHandler(userService).RegisterProfileRoutes(protected)
	NewUserHandler(userService).RegisterRoutes(&router.RouterGroup)
	h.router = router

	return h
}

func (h *harness) createUser(email, name, role string) *domainUser.User {
	h.t.Helper()

	hashed, err := utils.HashPassword(testPassword)
	require.NoError(h.t, err)

	u := &domainUser.User{
		Email:          email,
		PasswordHashed: hashed,
		Name:           name,
		Phone:          "81234567890",
		Address:        domainUser.Address{Country: "Indonesia", City: "Bogor", Detail: "Jl. Pajajaran"},
		Role:           role,
	}
	if role != domainUser.RoleUser {
		desc := "Buah segar setiap hari"
		u.Description = &desc
		u.OperatingHours = &domainUser.OperatingHours{OpenTime: "08:00", CloseTime: "20:00", StartDay: "Senin", EndDay: "Sabtu"}
	}
	require.NoError(h.t, h.users.Create(context.Background(), u))
	return u
}

func (h *harness) createBuah(id, creatorID, name string) {
	h.t.Helper()
	stock := 12
	now := time.Now().UTC()
	require.NoError(h.t, h.db.Create(&models.BuahModel{
		ID:          id,
		Name:        name,
		Price:       "15000/kg",
		Stock:       &stock,
		Unit:        "kg",
		Image:       "https://cdn.example.com/" + id + ".jpg",
		Description: "Manis",
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}).Error)
}

func (h *harness) createArticle(number int, title string) {
	h.t.Helper()
	created := time.Date(2023, time.March, 5, 3, 0, 0, 0, time.UTC)
	require.NoError(h.t, h.db.Create(&models.ArticleModel{
		DocID:     title,
		Number:    number,
		Title:     title,
		Content:   "Isi artikel",
		Author:    "Redaksi",
		Photo:     "https://cdn.example.com/a.jpg",
		CreatedAt: &created,
	}).Error)
}

func (h *harness) token(u *domainUser.User) string {
	h.t.Helper()
	token, _, err := utils.GenerateAccessToken(u.ID, u.Email, u.Role, h.cfg.JWT.Secret, time.Hour)
	require.NoError(h.t, err)
	return token
}

func (h *harness) do(req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	h.t.Helper()
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec, body
}

func jsonRequest(method, target string, payload any, token string) *http.Request {
	var buf bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&buf).Encode(payload)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func multipartRequest(t *testing.T, target string, fields map[string]string, file []byte, token string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		part, err := w.CreateFormFile("file", "avatar.png")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPatch, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestListByRoleHandler(t *testing.T) {
	h := newHarness(t)

	rec, body := h.do(jsonRequest(http.MethodGet, "/user/admin", nil, ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, true, body["errors"])
	assert.Equal(t, "Parameter Path Value Must Be toko/vendor", body["message"])

	rec, body = h.do(jsonRequest(http.MethodGet, "/user/vendor", nil, ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Data Not Found", body["message"])
	assert.Equal(t, float64(0), body["totalData"])
	assert.Equal(t, []any{}, body["data"])
	assert.NotContains(t, body, "card")

	for i, name := range []string{"Toko Satu", "Toko Dua", "Toko Tiga", "Toko Empat"} {
		h.createUser(fmt.Sprintf("toko%d@buah.id", i), name, domainUser.RoleToko)
	}
	h.createUser("pembeli@buah.id", "Pembeli", domainUser.RoleUser)

	rec, body = h.do(jsonRequest(http.MethodGet, "/user/toko?page=2&size=3&card=true", nil, ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Get Role User Data", body["message"])
	assert.Equal(t, float64(4), body["totalData"])
	require.Len(t, body["data"], 1)
	card, ok := body["card"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, card["wa_link"], "https://api.whatsapp.com/send?phone=62")
}

func TestListByRoleLenientPaging(t *testing.T) {
	h := newHarness(t)
	for i := range 7 {
		h.createUser(fmt.Sprintf("toko%d@buah.id", i), fmt.Sprintf("Toko Nomor %d", i), domainUser.RoleToko)
	}

	_, first := h.do(jsonRequest(http.MethodGet, "/user/toko?page=1&size=3", nil, ""))
	_, second := h.do(jsonRequest(http.MethodGet, "/user/toko?page=2&size=3", nil, ""))
	rec, lenient := h.do(jsonRequest(http.MethodGet, "/user/toko?page=2abc&size=3items", nil, ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, lenient["data"], 3)
	assert.Equal(t, second["data"], lenient["data"])
	assert.NotEqual(t, first["data"], lenient["data"])
}

func TestAccountDetailHandler(t *testing.T) {
	h := newHarness(t)
	toko := h.createUser("toko@buah.id", "Toko Segar", domainUser.RoleToko)
	vendor := h.createUser("vendor@buah.id", "Vendor Jaya", domainUser.RoleVendor)

	rec, body := h.do(jsonRequest(http.MethodGet, "/user/toko/"+toko.ID, nil, ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Data Buah Kosong", body["message"])
	assert.Equal(t, float64(0), body["totalData"])
	data := body["data"].(map[string]any)
	assert.Equal(t, []any{}, data["buah"])

	h.createBuah("b1", toko.ID, "Apel")
	h.createBuah("b2", toko.ID, "Jeruk")

	rec, body = h.do(jsonRequest(http.MethodGet, "/user/toko/"+toko.ID+"?size=1", nil, ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Get Detail User Info", body["message"])
	assert.Equal(t, float64(2), body["totalData"])
	items := body["data"].(map[string]any)["buah"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(15000), items[0].(map[string]any)["harga"])

	rec, body = h.do(jsonRequest(http.MethodGet, "/user/vendor/"+vendor.ID, nil, ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, body, "totalData")
	assert.NotContains(t, body["data"], "buah")

	rec, body = h.do(jsonRequest(http.MethodGet, "/user/vendor/"+toko.ID, nil, ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Error Get Data User!", body["message"])
}

func TestProductDetailHandler(t *testing.T) {
	h := newHarness(t)
	toko := h.createUser("toko@buah.id", "Toko Segar", domainUser.RoleToko)
	other := h.createUser("lain@buah.id", "Toko Lain", domainUser.RoleToko)
	h.createBuah("b1", toko.ID, "Apel")

	rec, body := h.do(jsonRequest(http.MethodGet, "/user/toko/"+toko.ID+"/b1", nil, ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Get Detail Buah Data", body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "Toko Segar", data["toko"].(map[string]any)["name"])
	assert.Equal(t, "b1", data["buah"].(map[string]any)["idBuah"])

	rec, body = h.do(jsonRequest(http.MethodGet, "/user/toko/"+other.ID+"/b1", nil, ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "user not authorized", body["message"])
	assert.NotContains(t, body, "data")

	rec, body = h.do(jsonRequest(http.MethodGet, "/user/toko/missing/b1", nil, ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User Not Authorized", body["message"])
}

func TestGetInfoRequiresToken(t *testing.T) {
	h := newHarness(t)
	u := h.createUser("pembeli@buah.id", "Pembeli Setia", domainUser.RoleUser)

	rec, body := h.do(jsonRequest(http.MethodGet, "/user/info", nil, ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, true, body["errors"])

	rec, body = h.do(jsonRequest(http.MethodGet, "/user/info", nil, h.token(u)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Success Get User Info", body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "pembeli@buah.id", data["email"])
	assert.Equal(t, domainUser.RoleUser, data["role"])
}

func TestResetTokenIsNotABearerToken(t *testing.T) {
	h := newHarness(t)
	u := h.createUser("pembeli@buah.id", "Pembeli Setia", domainUser.RoleUser)

	reset, err := utils.GenerateResetToken(u.ID, u.Email, "nonce", h.cfg.JWT.Secret, time.Minute)
	require.NoError(t, err)

	rec, _ := h.do(jsonRequest(http.MethodGet, "/user/info", nil, reset))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangeInfoMultipartForStore(t *testing.T) {
	h := newHarness(t)
	toko := h.createUser("toko@buah.id", "Toko Segar", domainUser.RoleToko)

	h.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, img domainUser.ImageUpload) (string, error) {
			assert.Equal(t, toko.ID, img.UserID)
			assert.Equal(t, "image/png", img.ContentType)
			assert.False(t, img.Replace)
			return "https://cdn.example.com/toko.jpg", nil
		})

	fields := map[string]string{
		"name":      "Toko Segar Baru",
		"telepon":   "081299998888",
		"kota":      "Depok",
		"deskripsi": "Buah impor",
		"jam_buka":  "07:00",
	}
	rec, body := h.do(multipartRequest(t, "/user/info", fields, pngBytes(t), h.token(toko)))
	require.Equal(t, http.StatusOK, rec.Code, body)
	assert.Equal(t, "Success Edit Data User", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "Toko Segar Baru", data["name"])
	assert.Equal(t, "81299998888", data["telepon"])
	assert.Equal(t, "Buah impor", data["deskripsi"])
	assert.Equal(t, "https://cdn.example.com/toko.jpg", data["gambar_profil"])
	assert.Equal(t, "07:00", data["jam_operasional"].(map[string]any)["jam_buka"])
}

func TestChangeInfoRejectsNonImageFile(t *testing.T) {
	h := newHarness(t)
	toko := h.createUser("toko@buah.id", "Toko Segar", domainUser.RoleToko)

	fields := map[string]string{"name": "Toko Segar", "telepon": "081234567"}
	rec, body := h.do(multipartRequest(t, "/user/info", fields, []byte("just some text"), h.token(toko)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "file must be an image", body["message"])
}

func TestChangeInfoPlainUserJSON(t *testing.T) {
	h := newHarness(t)
	u := h.createUser("pembeli@buah.id", "Pembeli Setia", domainUser.RoleUser)

	payload := map[string]string{"name": "Pembeli Baru", "telepon": "081100001111", "deskripsi": "ignored"}
	rec, body := h.do(jsonRequest(http.MethodPatch, "/user/info", payload, h.token(u)))
	require.Equal(t, http.StatusOK, rec.Code, body)

	data := body["data"].(map[string]any)
	assert.Equal(t, user.NotAuthorizedToChange, data["deskripsi"])
	assert.Equal(t, user.NotAuthorizedToChange, data["gambar_profil"])
	assert.Equal(t, user.NotAuthorizedToChange, data["jam_operasional"].(map[string]any)["hari_buka_awal"])

	rec, body = h.do(jsonRequest(http.MethodPatch, "/user/info", map[string]string{"telepon": "081100001111"}, h.token(u)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "name is required", body["message"])
}

func TestChangeInfoPlainUserIgnoresAttachment(t *testing.T) {
	h := newHarness(t)
	u := h.createUser("pembeli@buah.id", "Pembeli Setia", domainUser.RoleUser)

	fields := map[string]string{"name": "Pembeli Baru", "telepon": "081234567"}
	rec, body := h.do(multipartRequest(t, "/user/info", fields, []byte("just some text"), h.token(u)))
	require.Equal(t, http.StatusOK, rec.Code, body)
	assert.Equal(t, user.NotAuthorizedToChange, body["data"].(map[string]any)["gambar_profil"])
}

func TestChangeInfoStoresRawText(t *testing.T) {
	h := newHarness(t)
	toko := h.createUser("toko@buah.id", "Toko Segar", domainUser.RoleToko)

	payload := map[string]string{
		"name":      "  Toko Buah & Sayur ",
		"telepon":   "081234567",
		"deskripsi": "Apel <merah> & \"hijau\"",
	}
	for range 2 {
		rec, body := h.do(jsonRequest(http.MethodPatch, "/user/info", payload, h.token(toko)))
		require.Equal(t, http.StatusOK, rec.Code, body)
		data := body["data"].(map[string]any)
		assert.Equal(t, "Toko Buah & Sayur", data["name"])
		payload["name"] = data["name"].(string)
	}

	stored, err := h.users.GetByID(context.Background(), toko.ID)
	require.NoError(t, err)
	assert.Equal(t, "Toko Buah & Sayur", stored.Name)
	require.NotNil(t, stored.Description)
	assert.Equal(t, `Apel <merah> & "hijau"`, *stored.Description)
}

func TestChangeInfoPhoneFormats(t *testing.T) {
	h := newHarness(t)
	u := h.createUser("pembeli@buah.id", "Pembeli Setia", domainUser.RoleUser)

	payload := map[string]string{"name": "Pembeli Setia", "telepon": "+62 812-3456-789"}
	rec, body := h.do(jsonRequest(http.MethodPatch, "/user/info", payload, h.token(u)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "telepon must be a valid phone number", body["message"])

	payload["telepon"] = " +628123456789 "
	rec, body = h.do(jsonRequest(http.MethodPatch, "/user/info", payload, h.token(u)))
	require.Equal(t, http.StatusOK, rec.Code, body)
	assert.Equal(t, "+628123456789", body["data"].(map[string]any)["telepon"])

	stored, err := h.users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "+628123456789", stored.Phone)
}

func TestChangePasswordHandler(t *testing.T) {
	h := newHarness(t)
	u := h.createUser("pembeli@buah.id", "Pembeli Setia", domainUser.RoleUser)

	rec, body := h.do(jsonRequest(http.MethodPatch, "/user/password",
		map[string]string{"password_lama": "salah-sekali", "password_baru": "PasswordBaru1"}, h.token(u)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "The Old Password Doesnt Match Your Account! Failed to Change Password!", body["message"])

	rec, body = h.do(jsonRequest(http.MethodPatch, "/user/password",
		map[string]string{"password_lama": testPassword, "password_baru": "PasswordBaru1"}, h.token(u)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User Success Change Password", body["message"])

	rec, _ = h.do(jsonRequest(http.MethodPost, "/auth/login",
		map[string]string{"email": u.Email, "password": "PasswordBaru1"}, ""))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestForgetPasswordFlow(t *testing.T) {
	h := newHarness(t)
	u := h.createUser("pembeli@buah.id", "Pembeli Setia", domainUser.RoleUser)

	var mailed string
	h.mailer.EXPECT().
		SendPasswordReset(gomock.Any(), domainUser.Recipient{Email: u.Email, Name: u.Name}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domainUser.Recipient, token string) error {
			mailed = token
			return nil
		})

	rec, body := h.do(jsonRequest(http.MethodPost, "/user/forget_password", map[string]string{"email": "nobody@buah.id"}, ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Failed Get Token, User Not Found!", body["message"])

	rec, body = h.do(jsonRequest(http.MethodPost, "/user/forget_password", map[string]string{"email": u.Email}, ""))
	require.Equal(t, http.StatusOK, rec.Code, body)
	assert.Equal(t, "Success Send Token to Email", body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, mailed, data["token"])

	redeem := map[string]string{"change_password_token": mailed, "password": "PasswordBaru1"}
	rec, body = h.do(jsonRequest(http.MethodPatch, "/user/forget_password", redeem, ""))
	require.Equal(t, http.StatusOK, rec.Code, body)
	assert.Equal(t, "Success Change Password from Forget Password Feature", body["message"])
	assert.Equal(t, u.ID, body["data"].(map[string]any)["id"])

	rec, body = h.do(jsonRequest(http.MethodPatch, "/user/forget_password", redeem, ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "The Token is not Valid!", body["message"])
}

func TestAuthHandlers(t *testing.T) {
	h := newHarness(t)

	register := map[string]string{
		"name":     "Toko Baru",
		"email":    "Baru@Buah.id",
		"password": testPassword,
		"telepon":  "081234567890",
		"role":     domainUser.RoleToko,
	}
	rec, body := h.do(jsonRequest(http.MethodPost, "/auth/register", register, ""))
	require.Equal(t, http.StatusCreated, rec.Code, body)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "baru@buah.id", data["user"].(map[string]any)["email"])

	rec, _ = h.do(jsonRequest(http.MethodPost, "/auth/register", register, ""))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, body = h.do(jsonRequest(http.MethodPost, "/auth/login",
		map[string]string{"email": "baru@buah.id", "password": "wrong-password"}, ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid email or password", body["message"])

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec, body = h.do(req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidBody, body["message"])
}

func TestArticleHandlers(t *testing.T) {
	h := newHarness(t)
	h.createArticle(1, "Manfaat Apel")
	h.createArticle(2, "Musim Mangga")

	rec, body := h.do(jsonRequest(http.MethodGet, "/articles", nil, ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Retrive all data article", body["message"])
	assert.Equal(t, float64(2), body["totalData"])
	require.Len(t, body["result"], 2)
	first := body["result"].([]any)[0].(map[string]any)
	assert.Equal(t, "5 Maret 2023", first["createdAt"])

	rec, body = h.do(jsonRequest(http.MethodGet, "/articles/1?card=true", nil, ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Get data article random", body["message"])
	assert.Equal(t, float64(1), body["data"].(map[string]any)["id"])
	assert.Equal(t, float64(2), body["randomItem"].(map[string]any)["id"])

	rec, body = h.do(jsonRequest(http.MethodGet, "/articles/2", nil, ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, body, "randomItem")

	rec, body = h.do(jsonRequest(http.MethodGet, "/articles/abc", nil, ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "id must be an integer", body["message"])

	rec, body = h.do(jsonRequest(http.MethodGet, "/articles/99", nil, ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "id not found", body["message"])
}
