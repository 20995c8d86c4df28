package util

import "github.com/gin-gonic/gin"

// 统一返回结构：成功 {"message": ..., "data": ...}，失败 {"message": ...}
// data 为 nil 时不输出 data 字段（例如删除成功只有 message）。

// Success 统一成功返回
func Success(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// Error 统一错误返回
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
