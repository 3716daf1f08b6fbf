package user

import (
	"strings"

	domainBuah "fruitarians-api/internal/domain/buah"
	domainUser "fruitarians-api/internal/domain/user"
	appErrors "fruitarians-api/pkg/errors"
	"fruitarians-api/pkg/utils"
)

// NotAuthorizedToChange replaces role-gated fields in edit responses for
// plain user accounts.
const NotAuthorizedToChange = "not authorized to change"

type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=4,max=255"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	Telepon         string `json:"telepon" validate:"required,phone"`
	Role            string `json:"role" validate:"required,user_role"`
	Negara          string `json:"negara" validate:"omitempty,max=100"`
	Kota            string `json:"kota" validate:"omitempty,max=100"`
	DeskripsiAlamat string `json:"deskripsi_alamat" validate:"omitempty,max=500"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangeInfoRequest is bound from multipart, urlencoded or JSON bodies.
type ChangeInfoRequest struct {
	Name            string `json:"name" form:"name" validate:"required,min=4,max=255"`
	Telepon         string `json:"telepon" form:"telepon" validate:"required,phone"`
	Negara          string `json:"negara" form:"negara" validate:"omitempty,max=100"`
	Kota            string `json:"kota" form:"kota" validate:"omitempty,max=100"`
	DeskripsiAlamat string `json:"deskripsi_alamat" form:"deskripsi_alamat" validate:"omitempty,max=500"`
	Deskripsi       string `json:"deskripsi" form:"deskripsi" validate:"omitempty,max=1000"`
	JamBuka         string `json:"jam_buka" form:"jam_buka" validate:"omitempty,max=50"`
	JamTutup        string `json:"jam_tutup" form:"jam_tutup" validate:"omitempty,max=50"`
	HariBukaAwal    string `json:"hari_buka_awal" form:"hari_buka_awal" validate:"omitempty,max=50"`
	HariBukaAkhir   string `json:"hari_buka_akhir" form:"hari_buka_akhir" validate:"omitempty,max=50"`

	Image *ImageFile `json:"-" form:"-"`
}

// MaxImageBytes caps profile pictures.
const MaxImageBytes = 5 << 20

// ImageFile is an attached profile picture already read into memory.
// ContentType is sniffed from Data, not taken from the client.
type ImageFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (f *ImageFile) validate() error {
	if len(f.Data) > MaxImageBytes {
		return appErrors.BadRequest(msgImageTooLarge)
	}
	if !strings.HasPrefix(f.ContentType, "image/") {
		return appErrors.BadRequest(msgImageNotImage)
	}
	return nil
}

type ChangePasswordRequest struct {
	PasswordLama string `json:"password_lama" validate:"required"`
	PasswordBaru string `json:"password_baru" validate:"required,min=8"`
}

type ForgetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type RedeemResetRequest struct {
	ChangePasswordToken string `json:"change_password_token" validate:"required"`
	Password            string `json:"password" validate:"required,min=8"`
}

type AlamatResponse struct {
	Negara          string `json:"negara"`
	Kota            string `json:"kota"`
	DeskripsiAlamat string `json:"deskripsi_alamat"`
}

type JamOperasionalResponse struct {
	JamBuka       string `json:"jam_buka"`
	JamTutup      string `json:"jam_tutup"`
	HariBukaAwal  string `json:"hari_buka_awal"`
	HariBukaAkhir string `json:"hari_buka_akhir"`
}

// PublicProfile is one entry of the store/vendor directory.
type PublicProfile struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Email          string                  `json:"email"`
	Telepon        string                  `json:"telepon"`
	WaLink         string                  `json:"wa_link"`
	GambarProfil   *string                 `json:"gambar_profil"`
	Deskripsi      *string                 `json:"deskripsi"`
	Alamat         AlamatResponse          `json:"alamat"`
	Bergabung      string                  `json:"bergabung"`
	JamOperasional *JamOperasionalResponse `json:"jam_operasional"`
}

type DirectoryResult struct {
	Items []PublicProfile
	Total int
	Card  *PublicProfile
}

type AccountDetail struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Alamat         AlamatResponse          `json:"alamat"`
	Telepon        string                  `json:"telepon"`
	Deskripsi      *string                 `json:"deskripsi"`
	JamOperasional *JamOperasionalResponse `json:"jam_operasional"`
	WaLink         string                  `json:"wa_link"`
	Bergabung      string                  `json:"bergabung"`
	GambarProfil   *string                 `json:"gambar_profil"`
}

type BuahSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Harga  int    `json:"harga"`
	Stok   int    `json:"stok"`
	Satuan string `json:"satuan"`
	Gambar string `json:"gambar"`
}

// StoreDetail is an AccountDetail with one page of the store's products.
type StoreDetail struct {
	AccountDetail
	Buah []BuahSummary `json:"buah"`
}

type AccountDetailResult struct {
	Detail        any
	IsStore       bool
	TotalProducts int
}

type StoreSummary struct {
	Name           string                  `json:"name"`
	Telepon        string                  `json:"telepon"`
	Alamat         AlamatResponse          `json:"alamat"`
	WaLink         string                  `json:"wa_link"`
	Deskripsi      *string                 `json:"deskripsi"`
	JamOperasional *JamOperasionalResponse `json:"jam_operasional"`
	Bergabung      string                  `json:"bergabung"`
	GambarProfil   *string                 `json:"gambar_profil"`
}

type BuahDetail struct {
	IDBuah    string `json:"idBuah"`
	Name      string `json:"name"`
	Harga     int    `json:"harga"`
	Satuan    string `json:"satuan"`
	Stok      int    `json:"stok"`
	Gambar    string `json:"gambar"`
	Deskripsi string `json:"deskripsi"`
	Creator   string `json:"creator"`
}

type ProductDetail struct {
	Toko StoreSummary `json:"toko"`
	Buah BuahDetail   `json:"buah"`
}

// ProfileInfo is the caller's own profile.
type ProfileInfo struct {
	ID             string                  `json:"id"`
	Email          string                  `json:"email"`
	Name           string                  `json:"name"`
	Alamat         AlamatResponse          `json:"alamat"`
	Telepon        string                  `json:"telepon"`
	Role           string                  `json:"role"`
	Deskripsi      *string                 `json:"deskripsi"`
	JamOperasional *JamOperasionalResponse `json:"jam_operasional"`
	Bergabung      string                  `json:"bergabung"`
	GambarProfil   *string                 `json:"gambar_profil"`
}

// ChangeInfoResponse holds either the stored role-gated values or the
// NotAuthorizedToChange sentinel in their place.
type ChangeInfoResponse struct {
	Email          string         `json:"email"`
	Name           string         `json:"name"`
	Alamat         AlamatResponse `json:"alamat"`
	Telepon        string         `json:"telepon"`
	Deskripsi      any            `json:"deskripsi"`
	JamOperasional any            `json:"jam_operasional"`
	GambarProfil   any            `json:"gambar_profil"`
}

type AccountRef struct {
	Email string `json:"email"`
	ID    string `json:"id"`
}

type ResetTokenResponse struct {
	Token string     `json:"token"`
	User  AccountRef `json:"user"`
}

type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expiresAt"`
	User      ProfileInfo `json:"user"`
}

func toAlamat(a domainUser.Address) AlamatResponse {
	return AlamatResponse{
		Negara:          a.Country,
		Kota:            a.City,
		DeskripsiAlamat: a.Detail,
	}
}

func toJam(h *domainUser.OperatingHours) *JamOperasionalResponse {
	if h == nil {
		return nil
	}
	return &JamOperasionalResponse{
		JamBuka:       h.OpenTime,
		JamTutup:      h.CloseTime,
		HariBukaAwal:  h.StartDay,
		HariBukaAkhir: h.EndDay,
	}
}

func ToPublicProfile(u *domainUser.User) PublicProfile {
	return PublicProfile{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Telepon:        u.Phone,
		WaLink:         utils.WhatsAppLink(u.Phone),
		GambarProfil:   u.ProfileImage,
		Deskripsi:      u.Description,
		Alamat:         toAlamat(u.Address),
		Bergabung:      utils.FormatJoinDate(u.CreatedAt),
		JamOperasional: toJam(u.OperatingHours),
	}
}

func ToAccountDetail(u *domainUser.User) AccountDetail {
	return AccountDetail{
		ID:             u.ID,
		Name:           u.Name,
		Alamat:         toAlamat(u.Address),
		Telepon:        u.Phone,
		Deskripsi:      u.Description,
		JamOperasional: toJam(u.OperatingHours),
		WaLink:         utils.WhatsAppLink(u.Phone),
		Bergabung:      utils.FormatJoinDate(u.CreatedAt),
		GambarProfil:   u.ProfileImage,
	}
}

func ToStoreSummary(u *domainUser.User) StoreSummary {
	return StoreSummary{
		Name:           u.Name,
		Telepon:        u.Phone,
		Alamat:         toAlamat(u.Address),
		WaLink:         utils.WhatsAppLink(u.Phone),
		Deskripsi:      u.Description,
		JamOperasional: toJam(u.OperatingHours),
		Bergabung:      utils.FormatJoinDate(u.CreatedAt),
		GambarProfil:   u.ProfileImage,
	}
}

func ToProfileInfo(u *domainUser.User) ProfileInfo {
	return ProfileInfo{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Alamat:         toAlamat(u.Address),
		Telepon:        u.Phone,
		Role:           u.Role,
		Deskripsi:      u.Description,
		JamOperasional: toJam(u.OperatingHours),
		Bergabung:      utils.FormatJoinDate(u.CreatedAt),
		GambarProfil:   u.ProfileImage,
	}
}

func ToChangeInfoResponse(u *domainUser.User) ChangeInfoResponse {
	resp := ChangeInfoResponse{
		Email:        u.Email,
		Name:         u.Name,
		Alamat:       toAlamat(u.Address),
		Telepon:      u.Phone,
		Deskripsi:    NotAuthorizedToChange,
		GambarProfil: NotAuthorizedToChange,
		JamOperasional: JamOperasionalResponse{
			JamBuka:       NotAuthorizedToChange,
			JamTutup:      NotAuthorizedToChange,
			HariBukaAwal:  NotAuthorizedToChange,
			HariBukaAkhir: NotAuthorizedToChange,
		},
	}
	if u.Role != domainUser.RoleUser {
		resp.Deskripsi = u.Description
		resp.JamOperasional = toJam(u.OperatingHours)
		resp.GambarProfil = u.ProfileImage
	}
	return resp
}

func ToBuahSummary(b *domainBuah.Buah) BuahSummary {
	return BuahSummary{
		ID:     b.ID,
		Name:   b.Name,
		Harga:  utils.ParseLeadingInt(b.Price),
		Stok:   b.StockOrZero(),
		Satuan: b.Unit,
		Gambar: b.Image,
	}
}

func ToBuahDetail(b *domainBuah.Buah) BuahDetail {
	return BuahDetail{
		IDBuah:    b.ID,
		Name:      b.Name,
		Harga:     utils.ParseLeadingInt(b.Price),
		Satuan:    b.Unit,
		Stok:      b.StockOrZero(),
		Gambar:    b.Image,
		Deskripsi: b.Description,
		Creator:   b.CreatorID,
	}
}
