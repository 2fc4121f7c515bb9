package handler

import (
	jsoniter "github.com/json-iterator/go"
)

// json usa o jsoniter em modo compatível com a biblioteca padrão para a
// serialização de todas as respostas da API
var json = jsoniter.ConfigCompatibleWithStandardLibrary
