package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"registrar/internal/auth"
	"registrar/internal/database"
)

var (
	apiBaseURL  string
	tokenSecret string
)

var rootCmd = &cobra.Command{
	Use:   "registrar",
	Short: "Registrar CLI",
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage identity tokens",
}

var (
	mintUID           string
	mintEmail         string
	mintPhone         string
	mintEmailVerified bool
	mintAge           time.Duration
)

var tokenMintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint a signed identity token for testing",
	Run: func(cmd *cobra.Command, args []string) {
		uid := mintUID
		if uid == "" {
			uid = uuid.NewString()
		}

		token, err := auth.GenerateToken(auth.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:  uid,
				IssuedAt: jwt.NewNumericDate(time.Now().Add(-mintAge)),
			},
			Email:         mintEmail,
			EmailVerified: mintEmailVerified,
			PhoneNumber:   mintPhone,
		}, tokenSecret)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}

		fmt.Println("Subject :", uid)
		fmt.Println("Token   :", token)
	},
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var (
	registerToken string
	registerEmail string
	registerPhone string
)

var userRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register or retrieve a user with an identity token",
	Run: func(cmd *cobra.Command, args []string) {
		body := map[string]string{}
		if registerEmail != "" {
			body["email"] = registerEmail
		}
		if registerPhone != "" {
			body["phone"] = registerPhone
		}

		resp, err := resty.New().
			SetBaseURL(apiBaseURL).
			SetHeader("Accept", "application/json").
			SetAuthToken(registerToken).
			R().
			SetBody(body).
			SetResult(&database.User{}).
			Post("/register_user")

		if err != nil {
			fmt.Println("Error:", err)
			return
		}

		fmt.Println("Status Code:", resp.StatusCode())

		if user, ok := resp.Result().(*database.User); ok && user.UID != "" {
			fmt.Println("UID             :", user.UID)
			fmt.Println("Email           :", user.EmailEntered)
			fmt.Println("Email Normalized:", user.EmailNormalized)
			fmt.Println("Phone           :", user.Phone)
			fmt.Println("Role            :", user.Role)
		} else {
			fmt.Println(resp.String())
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", "http://localhost:3000", "API base URL")
	rootCmd.PersistentFlags().StringVar(&tokenSecret, "secret", os.Getenv("TOKEN_SECRET"), "token signing secret")

	tokenMintCmd.Flags().StringVar(&mintUID, "uid", "", "subject id (random when empty)")
	tokenMintCmd.Flags().StringVar(&mintEmail, "email", "", "email claim")
	tokenMintCmd.Flags().StringVar(&mintPhone, "phone", "", "phone_number claim")
	tokenMintCmd.Flags().BoolVar(&mintEmailVerified, "email-verified", false, "email_verified claim")
	tokenMintCmd.Flags().DurationVar(&mintAge, "age", 0, "age of the iat claim, e.g. 10m")

	userRegisterCmd.Flags().StringVar(&registerToken, "token", "", "identity token")
	userRegisterCmd.Flags().StringVar(&registerEmail, "email", "", "fallback email")
	userRegisterCmd.Flags().StringVar(&registerPhone, "phone", "", "fallback phone")
	userRegisterCmd.MarkFlagRequired("token")

	tokenCmd.AddCommand(tokenMintCmd)
	userCmd.AddCommand(userRegisterCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(userCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
