package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"fruitarians-api/internal/usecase/user"
	"fruitarians-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const profileImageField = "file"

var errImageUnreadable = errors.New("file could not be read")

type UserHandler struct {
	service *user.Service
}

func NewUserHandler(service *user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterRoutes mounts the public directory and reset-password routes.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	userGroup := router.Group("/user")
	{
		userGroup.POST("/forget_password", h.IssueResetToken)
		userGroup.PATCH("/forget_password", h.RedeemResetToken)
		userGroup.GET("/:role", h.ListByRole)
		userGroup.GET("/:role/:id", h.GetAccountDetail)
		userGroup.GET("/:role/:id/:idBuah", h.GetProductDetail)
	}
}

// RegisterProfileRoutes mounts routes that need an authenticated caller.
func (h *UserHandler) RegisterProfileRoutes(router *gin.RouterGroup) {
	profile := router.Group("/user")
	{
		profile.GET("/info", h.GetInfo)
		profile.PATCH("/info", h.ChangeInfo)
		profile.PATCH("/password", h.ChangePassword)
	}
}

// ListByRole godoc
// @Summary      Store or vendor directory
// @Tags         user
// @Produce      json
// @Param        role  path      string  true   "toko or vendor"
// @Param        card  query     string  false  "true to include a random card"
// @Param        page  query     int     false  "Page, default 1"
// @Param        size  query     int     false  "Page size, default 3"
// @Success      200   {object}  utils.ListResponse{data=[]user.PublicProfile}
// @Failure      400   {object}  utils.Response
// @Router       /user/{role} [get]
func (h *UserHandler) ListByRole(c *gin.Context) {
	page, size := utils.ParsePageQuery(c.Query("page"), c.Query("size"))
	withCard := c.Query("card") == "true"

	result, err := h.service.ListByRole(c.Request.Context(), c.Param("role"), withCard, page, size)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if result.Total == 0 {
		utils.ListingResponse(c, http.StatusOK, "Data Not Found", []user.PublicProfile{}, 0, nil)
		return
	}

	var card any
	if result.Card != nil {
		card = result.Card
	}
	utils.ListingResponse(c, http.StatusOK, "Get Role User Data", result.Items, result.Total, card)
}

// GetAccountDetail godoc
// @Summary      Store or vendor detail, with a page of products for stores
// @Tags         user
// @Produce      json
// @Param        role  path      string  true   "toko or vendor"
// @Param        id    path      string  true   "Account id"
// @Param        page  query     int     false  "Product page, default 1"
// @Param        size  query     int     false  "Product page size, default 3"
// @Success      200   {object}  utils.Response{data=user.StoreDetail}
// @Failure      404   {object}  utils.Response
// @Router       /user/{role}/{id} [get]
func (h *UserHandler) GetAccountDetail(c *gin.Context) {
	page, size := utils.ParsePageQuery(c.Query("page"), c.Query("size"))

	result, err := h.service.GetAccountDetail(c.Request.Context(), c.Param("role"), c.Param("id"), page, size)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if !result.IsStore {
		utils.SuccessResponse(c, http.StatusOK, "Get Detail User Info", result.Detail)
		return
	}

	message := "Get Detail User Info"
	if result.TotalProducts == 0 {
		message = "Data Buah Kosong"
	}
	utils.PagedResponse(c, http.StatusOK, message, result.Detail, result.TotalProducts)
}

// GetProductDetail godoc
// @Summary      One product of a store
// @Tags         user
// @Produce      json
// @Param        role    path      string  true  "Any role, kept for path compatibility"
// @Param        id      path      string  true  "Store id"
// @Param        idBuah  path      string  true  "Product id"
// @Success      200     {object}  utils.Response{data=user.ProductDetail}
// @Failure      401     {object}  utils.Response
// @Router       /user/{role}/{id}/{idBuah} [get]
func (h *UserHandler) GetProductDetail(c *gin.Context) {
	detail, err := h.service.GetProductDetail(c.Request.Context(), c.Param("id"), c.Param("idBuah"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Get Detail Buah Data", detail)
}

// GetInfo godoc
// @Summary      Caller's own profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  utils.Response{data=user.ProfileInfo}
// @Failure      401  {object}  utils.Response
// @Router       /user/info [get]
func (h *UserHandler) GetInfo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	info, err := h.service.GetInfo(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Success Get User Info", info)
}

// ChangeInfo godoc
// @Summary      Edit the caller's profile
// @Tags         user
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name              formData  string  true   "Name"
// @Param        telepon           formData  string  true   "Phone"
// @Param        negara            formData  string  false  "Country"
// @Param        kota              formData  string  false  "City"
// @Param        deskripsi_alamat  formData  string  false  "Address detail"
// @Param        deskripsi         formData  string  false  "Description"
// @Param        jam_buka          formData  string  false  "Opening time"
// @Param        jam_tutup         formData  string  false  "Closing time"
// @Param        hari_buka_awal    formData  string  false  "First open day"
// @Param        hari_buka_akhir   formData  string  false  "Last open day"
// @Param        file              formData  file    false  "Profile image"
// @Success      200  {object}  utils.Response{data=user.ChangeInfoResponse}
// @Failure      400  {object}  utils.Response
// @Failure      401  {object}  utils.Response
// @Router       /user/info [patch]
func (h *UserHandler) ChangeInfo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req user.ChangeInfoRequest
	if err := bindChangeInfo(c, &req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	image, err := readProfileImage(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	req.Image = image

	req.Name = utils.SanitizeString(req.Name)
	req.Telepon = strings.TrimSpace(req.Telepon)
	req.Negara = utils.SanitizeString(req.Negara)
	req.Kota = utils.SanitizeString(req.Kota)
	req.DeskripsiAlamat = utils.SanitizeText(req.DeskripsiAlamat)
	req.Deskripsi = utils.SanitizeText(req.Deskripsi)
	req.JamBuka = utils.SanitizeString(req.JamBuka)
	req.JamTutup = utils.SanitizeString(req.JamTutup)
	req.HariBukaAwal = utils.SanitizeString(req.HariBukaAwal)
	req.HariBukaAkhir = utils.SanitizeString(req.HariBukaAkhir)

	resp, err := h.service.ChangeInfo(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Success Edit Data User", resp)
}

// ChangePassword godoc
// @Summary      Change the caller's password
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      user.ChangePasswordRequest  true  "Passwords"
// @Success      200   {object}  utils.Response
// @Failure      401   {object}  utils.Response
// @Router       /user/password [patch]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req user.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User Success Change Password", nil)
}

// IssueResetToken godoc
// @Summary      Mail a password reset token
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      user.ForgetPasswordRequest  true  "Email"
// @Success      200   {object}  utils.Response{data=user.ResetTokenResponse}
// @Failure      401   {object}  utils.Response
// @Router       /user/forget_password [post]
func (h *UserHandler) IssueResetToken(c *gin.Context) {
	var req user.ForgetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)

	resp, err := h.service.IssueResetToken(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Success Send Token to Email", resp)
}

// RedeemResetToken godoc
// @Summary      Set a new password with a reset token
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      user.RedeemResetRequest  true  "Token and new password"
// @Success      200   {object}  utils.Response{data=user.AccountRef}
// @Failure      401   {object}  utils.Response
// @Router       /user/forget_password [patch]
func (h *UserHandler) RedeemResetToken(c *gin.Context) {
	var req user.RedeemResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	req.ChangePasswordToken = strings.TrimSpace(req.ChangePasswordToken)

	ref, err := h.service.RedeemResetToken(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Success Change Password from Forget Password Feature", ref)
}

func bindChangeInfo(c *gin.Context, req *user.ChangeInfoRequest) error {
	switch c.ContentType() {
	case binding.MIMEMultipartPOSTForm:
		return c.ShouldBindWith(req, binding.FormMultipart)
	case binding.MIMEPOSTForm:
		return c.ShouldBindWith(req, binding.FormPost)
	default:
		return c.ShouldBindJSON(req)
	}
}

// readProfileImage returns nil when the request carries no file. Size and
// type are checked by the service, which ignores the file for plain users.
func readProfileImage(c *gin.Context) (*user.ImageFile, error) {
	if c.ContentType() != binding.MIMEMultipartPOSTForm {
		return nil, nil
	}

	header, err := c.FormFile(profileImageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, errImageUnreadable
	}

	data, err := readUpload(header)
	if err != nil {
		return nil, errImageUnreadable
	}

	return &user.ImageFile{
		Filename:    header.Filename,
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(io.LimitReader(file, user.MaxImageBytes+1))
}
