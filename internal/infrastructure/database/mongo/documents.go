package mongo

import (
	"time"

	"fruitarians-api/internal/domain/article"
	"fruitarians-api/internal/domain/buah"
	"fruitarians-api/internal/domain/user"
)

type userDocument struct {
	ID             string         `bson:"_id"`
	Email          string         `bson:"email"`
	Password       string         `bson:"password"`
	Name           string         `bson:"name"`
	Telepon        string         `bson:"telepon"`
	Alamat         alamatDocument `bson:"alamat"`
	Role           string         `bson:"role"`
	GambarProfil   *string        `bson:"gambar_profil"`
	Deskripsi      *string        `bson:"deskripsi,omitempty"`
	JamOperasional *jamDocument   `bson:"jam_operasional,omitempty"`
	Token          tokenDocument  `bson:"token"`
	CreatedAt      time.Time      `bson:"createdAt"`
	UpdatedAt      time.Time      `bson:"updatedAt"`
}

type alamatDocument struct {
	Negara          string `bson:"negara"`
	Kota            string `bson:"kota"`
	DeskripsiAlamat string `bson:"deskripsi_alamat"`
}

type jamDocument struct {
	JamBuka       string `bson:"jam_buka"`
	JamTutup      string `bson:"jam_tutup"`
	HariBukaAwal  string `bson:"hari_buka_awal"`
	HariBukaAkhir string `bson:"hari_buka_akhir"`
}

type tokenDocument struct {
	ForgetPass *string `bson:"forgetPass"`
}

type buahDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Harga     string    `bson:"harga"`
	Stok      *int      `bson:"stok,omitempty"`
	Satuan    string    `bson:"satuan"`
	Gambar    string    `bson:"gambar"`
	Deskripsi string    `bson:"deskripsi"`
	Creator   string    `bson:"creator"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type articleDocument struct {
	DocID     string     `bson:"_id,omitempty"`
	Number    int        `bson:"id"`
	Title     string     `bson:"title"`
	Konten    string     `bson:"konten"`
	Author    string     `bson:"author"`
	Photo     string     `bson:"photo"`
	CreatedAt *time.Time `bson:"createdAt,omitempty"`
}

func toUserDocument(u *user.User) *userDocument {
	doc := &userDocument{
		ID:       u.ID,
		Email:    u.Email,
		Password: u.PasswordHashed,
		Name:     u.Name,
		Telepon:  u.Phone,
		Alamat: alamatDocument{
			Negara:          u.Address.Country,
			Kota:            u.Address.City,
			DeskripsiAlamat: u.Address.Detail,
		},
		Role:         u.Role,
		GambarProfil: u.ProfileImage,
		Deskripsi:    u.Description,
		Token:        tokenDocument{ForgetPass: u.ResetNonce},
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if h := u.OperatingHours; h != nil {
		doc.JamOperasional = &jamDocument{
			JamBuka:       h.OpenTime,
			JamTutup:      h.CloseTime,
			HariBukaAwal:  h.StartDay,
			HariBukaAkhir: h.EndDay,
		}
	}
	return doc
}

func (d *userDocument) toEntity() *user.User {
	u := &user.User{
		ID:             d.ID,
		Email:          d.Email,
		PasswordHashed: d.Password,
		Name:           d.Name,
		Phone:          d.Telepon,
		Address: user.Address{
			Country: d.Alamat.Negara,
			City:    d.Alamat.Kota,
			Detail:  d.Alamat.DeskripsiAlamat,
		},
		Role:         d.Role,
		ProfileImage: d.GambarProfil,
		Description:  d.Deskripsi,
		ResetNonce:   d.Token.ForgetPass,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if j := d.JamOperasional; j != nil {
		u.OperatingHours = &user.OperatingHours{
			OpenTime:  j.JamBuka,
			CloseTime: j.JamTutup,
			StartDay:  j.HariBukaAwal,
			EndDay:    j.HariBukaAkhir,
		}
	}
	return u
}

func (d *buahDocument) toEntity() *buah.Buah {
	return &buah.Buah{
		ID:          d.ID,
		Name:        d.Name,
		Price:       d.Harga,
		Stock:       d.Stok,
		Unit:        d.Satuan,
		Image:       d.Gambar,
		Description: d.Deskripsi,
		CreatorID:   d.Creator,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (d *articleDocument) toEntity() *article.Article {
	return &article.Article{
		ID:        d.DocID,
		Number:    d.Number,
		Title:     d.Title,
		Content:   d.Konten,
		Author:    d.Author,
		Photo:     d.Photo,
		CreatedAt: d.CreatedAt,
	}
}
