package model

import "strconv"

type User struct {
	ID      string `json:"id"`
	Blocked bool   `json:"blocked"`
}

func UserFromRecord(key string, fields map[string]string) User {
	blocked, _ := strconv.ParseBool(fields["blocked"])
	return User{ID: key, Blocked: blocked}
}
