package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Shell) printError(err error) {
	s.println(s.styles.error.Render(err.Error()))
}

// readLine prints the prompt and returns the next line without its line ending.
// io.EOF is returned only when nothing was typed before input ended.
func (s *Shell) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)

	line, err := s.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) readNonEmpty(prompt, retry string) (string, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
		s.println(retry)
	}
}

func (s *Shell) readInt(prompt, retry string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return v, nil
		}
		s.println(retry)
	}
}

func (s *Shell) readFloat(prompt, retry string) (float64, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil {
			return v, nil
		}
		s.println(retry)
	}
}

// readOptionalInt returns nil for blank input
func (s *Shell) readOptionalInt(prompt, retry string) (*int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return nil, nil
		}
		v, err := strconv.Atoi(line)
		if err == nil {
			return &v, nil
		}
		s.println(retry)
	}
}

// readOptionalFloat returns nil for blank input
func (s *Shell) readOptionalFloat(prompt, retry string) (*float64, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return &v, nil
		}
		s.println(retry)
	}
}

func (s *Shell) readYesNo(prompt string) (bool, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		s.println("Please enter 'Y' or 'N'")
	}
}
