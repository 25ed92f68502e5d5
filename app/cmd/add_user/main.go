package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirashofficial/learnership-management-sub003/app/config"
	"github.com/sirashofficial/learnership-management-sub003/app/database"
	"github.com/sirashofficial/learnership-management-sub003/app/models"
)

func main() {
	firstName := flag.String("first-name", "", "user first name")
	lastName := flag.String("last-name", "", "user last name")
	email := flag.String("email", "", "user email")
	password := flag.String("password", "", "user password")
	role := flag.String("role", "facilitator", "role to assign (admin or facilitator)")
	flag.Parse()

	if *firstName == "" || *lastName == "" || *email == "" || *password == "" {
		flag.Usage()
		os.Exit(1)
	}

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
	}

	if err := database.CreateUser(db, user, *role); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s %s (%s) with role %s\n",
		user.FirstName, user.LastName, user.Email, *role)
}
