// Package assets holds the embedded roulette game page served to the
// casino frontend through GetGameAssets.
package assets

// HTML returns the game page markup.
func HTML() string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Roulette Game</title>
    <link rel="stylesheet" href="https://cdn.tailwindcss.com">
</head>
<body class="bg-green-900 text-white p-4">
    <div id="roulette-game-container" class="max-w-2xl mx-auto">
        <h1 class="text-3xl font-bold mb-4 text-center">🎡 Roulette</h1>
        <div id="roulette-result" class="text-center mb-4">
            <div id="winning-number" class="text-6xl font-bold mb-2">?</div>
            <div id="color" class="text-2xl"></div>
        </div>
        <div class="mb-4">
            <label class="block mb-2">Bet Type:</label>
            <select id="bet-type" class="w-full p-2 bg-gray-800 text-white rounded">
                <option value="red">Red</option>
                <option value="black">Black</option>
                <option value="even">Even</option>
                <option value="odd">Odd</option>
                <option value="low">Low (1-18)</option>
                <option value="high">High (19-36)</option>
            </select>
        </div>
        <div class="mb-4">
            <label class="block mb-2">Bet Amount:</label>
            <input type="number" id="bet-amount" value="10" min="10" max="1000" class="w-full p-2 bg-gray-800 text-white rounded">
        </div>
        <button id="spin-btn" class="w-full bg-red-600 hover:bg-red-700 text-white font-bold py-3 px-6 rounded-lg">
            Spin
        </button>
        <div id="result" class="mt-4 text-center"></div>
    </div>
    <script src="/roulette-game.js"></script>
</body>
</html>`
}

// JS returns the game page script.
func JS() string {
	return `
// Roulette Game JavaScript
async function initRouletteGame() {
    console.log('Initializing roulette game...');

    document.getElementById('spin-btn').addEventListener('click', async () => {
        const betAmount = parseFloat(document.getElementById('bet-amount').value);
        const betType = document.getElementById('bet-type').value;

        try {
            const response = await callRouletteService('Spin', {
                bet_type: betType,
                bet_amount: betAmount,
                cheat_active: false
            });

            document.getElementById('winning-number').textContent = response.winning_number;
            document.getElementById('color').textContent = response.color.toUpperCase();

            if (response.win) {
                document.getElementById('result').innerHTML =
                    ` + "`<div class=\"text-green-500 text-xl\">🎉 Win! Payout: $${response.payout.toFixed(2)}</div>`" + `;
            } else {
                document.getElementById('result').innerHTML =
                    ` + "`<div class=\"text-red-500 text-xl\">😢 No win this time</div>`" + `;
            }
        } catch (error) {
            console.error('Error spinning roulette:', error);
            document.getElementById('result').innerHTML =
                '<div class="text-red-500">Error: ' + error.message + '</div>';
        }
    });
}

async function callRouletteService(method, data) {
    const response = await fetch(` + "`/api/roulette/${method.toLowerCase()}`" + `, {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify(data)
    });
    return await response.json();
}

if (document.readyState === 'loading') {
    document.addEventListener('DOMContentLoaded', initRouletteGame);
} else {
    initRouletteGame();
}
`
}

// CSS returns the game page styles.
func CSS() string {
	return `
#roulette-game-container {
    font-family: 'Inter', sans-serif;
}

#winning-number {
    border: 4px solid #DC2626;
    border-radius: 50%;
    width: 120px;
    height: 120px;
    display: flex;
    align-items: center;
    justify-content: center;
    margin: 0 auto;
    box-shadow: 0 0 30px rgba(220, 38, 38, 0.5);
}

#spin-btn {
    transition: all 0.3s;
}

#spin-btn:hover {
    transform: translateY(-2px);
    box-shadow: 0 4px 12px rgba(220, 38, 38, 0.4);
}

#spin-btn:active {
    transform: translateY(0);
}
`
}
