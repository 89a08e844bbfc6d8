package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"linkedin-harvester/humanize"
	"linkedin-harvester/stealth"
)

const loginURL = "https://www.linkedin.com/login"

// login signs in with credentials, typing them with human keystroke
// timing.
func (s *Session) login(email, password string) error {
	page, err := s.NewPage()
	if err != nil {
		return err
	}
	defer page.Close()

	if err := s.Navigate(page, loginURL, 30*time.Second); err != nil {
		return err
	}
	stealth.Sleep(2, 3)

	bounded := page.Timeout(20 * time.Second)
	defer bounded.CancelTimeout()

	fmt.Println("⌨️ Typing email...")
	emailInput, err := bounded.Element(`input#username`)
	if err != nil {
		return fmt.Errorf("email input not found: %w", err)
	}
	stealth.SleepMillis(300, 500)
	if err := humanize.TypeCredential(emailInput, email); err != nil {
		return fmt.Errorf("failed to type email: %w", err)
	}
	stealth.Sleep(1, 2)

	fmt.Println("⌨️ Typing password...")
	passwordInput, err := bounded.Element(`input#password`)
	if err != nil {
		return fmt.Errorf("password input not found: %w", err)
	}
	stealth.SleepMillis(300, 500)
	if err := humanize.TypeCredential(passwordInput, password); err != nil {
		return fmt.Errorf("failed to type password: %w", err)
	}
	stealth.Sleep(1, 2)

	submit, err := bounded.Element(`button[type="submit"]`)
	if err != nil {
		return fmt.Errorf("submit button not found: %w", err)
	}
	if err := stealth.HumanClick(page, submit); err != nil {
		return fmt.Errorf("failed to click submit: %w", err)
	}

	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("login page load failed: %w", err)
	}
	stealth.Sleep(2, 4)

	info, err := page.Info()
	if err != nil {
		return fmt.Errorf("failed to read page info: %w", err)
	}
	if strings.Contains(info.URL, "/checkpoint") {
		return fmt.Errorf("checkpoint detected (captcha or 2FA required)")
	}
	if strings.Contains(info.URL, "/login") {
		return fmt.Errorf("login failed: invalid credentials")
	}

	if err := s.verify(); err != nil {
		return err
	}
	fmt.Println("✅ Authenticated successfully")
	return nil
}

// manualLogin opens LinkedIn and lets the operator sign in by hand, then
// verifies the result. Used when no credentials are configured.
func (s *Session) manualLogin() error {
	page, err := s.NewPage()
	if err != nil {
		return err
	}
	defer page.Close()

	if err := s.Navigate(page, "https://www.linkedin.com", 30*time.Second); err != nil {
		return err
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("⏳ PLEASE LOG IN TO LINKEDIN IN THE BROWSER WINDOW")
	fmt.Println("✅ Press ENTER here when you are logged in...")
	fmt.Println(strings.Repeat("=", 60))
	bufio.NewReader(os.Stdin).ReadString('\n')

	if err := s.verify(); err != nil {
		return err
	}
	fmt.Println("✅ Authenticated successfully")
	return nil
}
