package app

// Доступ к внутренним помощникам из app_test.
var NewMetricsServer = newMetricsServer
