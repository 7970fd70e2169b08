package controllers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/services"
)

// Session drives the interactive menu loop. It owns the input reader, the
// output writer and the identity of the logged-in user; all database work
// is delegated to the services.
type Session struct {
	in       *bufio.Reader
	out      io.Writer
	accounts *services.AccountService
	menu     *services.MenuService
	orders   *services.OrderService
	stores   *services.StoreService

	login string // empty while unauthenticated
	eof   bool   // input exhausted, unwind the menu loops
}

// NewSession wires a session over the given input/output streams and
// database handle.
func NewSession(in io.Reader, out io.Writer, db *gorm.DB) *Session {
	return &Session{
		in:       bufio.NewReader(in),
		out:      out,
		accounts: services.NewAccountService(db),
		menu:     services.NewMenuService(db),
		orders:   services.NewOrderService(db),
		stores:   services.NewStoreService(db),
	}
}

// Run executes the top-level menu loop until the user picks exit or the
// input stream ends.
func (s *Session) Run() {
	s.greeting()
	for !s.eof {
		fmt.Fprintln(s.out, "MAIN MENU")
		fmt.Fprintln(s.out, "---------")
		fmt.Fprintln(s.out, "1. Create user")
		fmt.Fprintln(s.out, "2. Log in")
		fmt.Fprintln(s.out, "9. < EXIT")

		switch s.readChoice() {
		case 1:
			s.createUser()
		case 2:
			s.logIn()
		case 9:
			return
		default:
			if s.eof {
				return
			}
			fmt.Fprintln(s.out, "Unrecognized choice!")
		}

		if s.login != "" {
			s.userLoop()
		}
	}
}

// userLoop is the authenticated menu. Privileged entries are listed for
// everyone; the role check happens inside each action.
func (s *Session) userLoop() {
	for !s.eof {
		fmt.Fprintln(s.out, "MAIN MENU")
		fmt.Fprintln(s.out, "---------")
		fmt.Fprintln(s.out, "1. View Profile")
		fmt.Fprintln(s.out, "2. Update Profile")
		fmt.Fprintln(s.out, "3. View Menu")
		fmt.Fprintln(s.out, "4. Place Order")
		fmt.Fprintln(s.out, "5. View Full Order ID History")
		fmt.Fprintln(s.out, "6. View Past 5 Order IDs")
		fmt.Fprintln(s.out, "7. View Order Information")
		fmt.Fprintln(s.out, "8. View Stores")
		fmt.Fprintln(s.out, "9. Update Order Status")
		fmt.Fprintln(s.out, "10. Update Menu")
		fmt.Fprintln(s.out, "11. Update User")
		fmt.Fprintln(s.out, ".........................")
		fmt.Fprintln(s.out, "20. Log out")

		switch s.readChoice() {
		case 1:
			s.viewProfile()
		case 2:
			s.updateProfile()
		case 3:
			s.viewMenu()
		case 4:
			s.placeOrder()
		case 5:
			s.viewAllOrders()
		case 6:
			s.viewRecentOrders()
		case 7:
			s.viewOrderInfo()
		case 8:
			s.viewStores()
		case 9:
			s.updateOrderStatus()
		case 10:
			s.updateMenu()
		case 11:
			s.updateUser()
		case 20:
			s.login = ""
			return
		default:
			if s.eof {
				s.login = ""
				return
			}
			fmt.Fprintln(s.out, "Unrecognized choice!")
		}
	}
}

func (s *Session) greeting() {
	fmt.Fprintln(s.out, "\n*******************************************************")
	fmt.Fprintln(s.out, "              Pizza Store User Interface")
	fmt.Fprintln(s.out, "*******************************************************")
}

// readLine prompts and reads one trimmed input line. The second return is
// false once the input stream has ended.
func (s *Session) readLine(prompt string) (string, bool) {
	if s.eof {
		return "", false
	}
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		s.eof = true
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// readChoice reads menu choices until an integer is entered. It returns
// only when a number was parsed or the input stream ended.
func (s *Session) readChoice() int {
	for {
		line, ok := s.readLine("Please make your choice: ")
		if !ok {
			return -1
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(s.out, "Your input is invalid!")
			continue
		}
		return choice
	}
}

// readInt prompts for one integer value. Unlike readChoice it does not
// re-prompt: malformed input aborts the current action.
func (s *Session) readInt(prompt string) (int, error) {
	line, ok := s.readLine(prompt)
	if !ok {
		return 0, io.EOF
	}
	return strconv.Atoi(strings.TrimSpace(line))
}
