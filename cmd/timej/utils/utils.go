package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var TimejInstanceId = gonanoid.MustGenerate("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ", 12)
