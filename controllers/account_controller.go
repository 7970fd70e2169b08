package controllers

import (
	"fmt"

	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/models"
)

// createUser walks through account creation. The login is checked before
// the remaining fields are prompted for; the role is always "customer".
func (s *Session) createUser() {
	login, ok := s.readLine("Enter user Login: ")
	if !ok {
		return
	}

	exists, err := s.accounts.LoginExists(login)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	if exists {
		fmt.Fprintln(s.out, "entered login already exists")
		return
	}

	phoneNum, ok := s.readLine("provide phone number: ")
	if !ok {
		return
	}
	password, ok := s.readLine("Provide a password: ")
	if !ok {
		return
	}

	if err := s.accounts.CreateUser(login, phoneNum, password); err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	fmt.Fprintln(s.out, "Added info to data base. Going back to main menu")
	s.greeting()
}

// logIn authenticates the user. Any failure path leaves the session
// unauthenticated.
func (s *Session) logIn() {
	login, ok := s.readLine("Enter Login: ")
	if !ok {
		return
	}

	exists, err := s.accounts.LoginExists(login)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	if !exists {
		fmt.Fprintln(s.out, "Login was not found")
		return
	}

	password, ok := s.readLine("Enter Password: ")
	if !ok {
		return
	}

	authorised, err := s.accounts.Authenticate(login, password)
	if err != nil {
		fmt.Fprintln(s.out, "Incorrect password")
		return
	}
	fmt.Fprintln(s.out, "login Success")
	s.login = authorised
}

func (s *Session) viewProfile() {
	fmt.Fprintln(s.out, "---USER Profile----")
	user, err := s.accounts.GetProfile(s.login)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	fmt.Fprintln(s.out, "User:", user.Login)
	fmt.Fprintln(s.out, "password:", user.Password)
	fmt.Fprintln(s.out, "role:", user.Role)
	fmt.Fprintln(s.out, "favorite Item:", user.FavoriteItems)
	fmt.Fprintln(s.out, "phone_number:", user.PhoneNum)
}

// updateProfile lets the user change their password, phone number or
// favorite item. Password and phone changes require re-entering the
// current value first.
func (s *Session) updateProfile() {
	fmt.Fprintln(s.out, "Hello", s.login, "what do you want to update")
	fmt.Fprintln(s.out, "1. Change password")
	fmt.Fprintln(s.out, "2. Change Phone Number")
	fmt.Fprintln(s.out, "3. Update favorite item")

	switch s.readChoice() {
	case 1:
		current, ok := s.readLine("Enter current password: ")
		if !ok {
			return
		}
		newPassword, ok := s.readLine("Enter new password: ")
		if !ok {
			return
		}
		if err := s.accounts.UpdatePassword(s.login, current, newPassword); err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		fmt.Fprintln(s.out, "Update successful")
	case 2:
		current, ok := s.readLine("Enter current phone Number ie(123-567-9979): ")
		if !ok {
			return
		}
		newPhone, ok := s.readLine("Enter new number: ")
		if !ok {
			return
		}
		if err := s.accounts.UpdatePhoneNum(s.login, current, newPhone); err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		fmt.Fprintln(s.out, "Update successful")
	case 3:
		item, ok := s.readLine("Enter new favorite item: ")
		if !ok {
			return
		}
		if err := s.accounts.UpdateFavoriteItems(s.login, item); err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		fmt.Fprintln(s.out, "Update successful")
	}
}

// updateUser is the manager-only user maintenance menu: rename a login or
// change a role.
func (s *Session) updateUser() {
	role, err := s.accounts.Role(s.login)
	if err != nil || role != models.RoleManager {
		fmt.Fprintln(s.out, "Access Denied. Only managers can update a user.")
		return
	}

	fmt.Fprintln(s.out, "Hello Manager, select an option:")
	fmt.Fprintln(s.out, "1. Edit a User's login")
	fmt.Fprintln(s.out, "2. Edit a User's Role")

	switch s.readChoice() {
	case 1:
		oldLogin, ok := s.readLine("Enter the current login name: ")
		if !ok {
			return
		}
		newLogin, ok := s.readLine("Enter the new login name: ")
		if !ok {
			return
		}
		if err := s.accounts.RenameLogin(s.login, oldLogin, newLogin); err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		fmt.Fprintln(s.out, "User login updated successfully.")
	case 2:
		login, ok := s.readLine("Enter the user login name: ")
		if !ok {
			return
		}
		newRole, ok := s.readLine("Enter new role: ")
		if !ok {
			return
		}
		if err := s.accounts.UpdateRole(s.login, login, newRole); err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		fmt.Fprintln(s.out, "User role updated successfully.")
	default:
		fmt.Fprintln(s.out, "Invalid selection. Returning to main menu.")
	}
}
